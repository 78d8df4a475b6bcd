package assess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFramework(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  string
	}{
		{
			name:  "django",
			files: map[string]string{"manage.py": ""},
			want:  "Django",
		},
		{
			name:  "flask via app.py",
			files: map[string]string{"app.py": ""},
			want:  "Flask",
		},
		{
			name:  "flask via wsgi.py",
			files: map[string]string{"wsgi.py": ""},
			want:  "Flask",
		},
		{
			name: "react from direct deps",
			files: map[string]string{
				"package.json": `{"dependencies": {"react": "^18.0.0"}}`,
			},
			want: "React",
		},
		{
			name: "react from dev deps",
			files: map[string]string{
				"package.json": `{"devDependencies": {"react": "^18.0.0"}}`,
			},
			want: "React",
		},
		{
			name: "express",
			files: map[string]string{
				"package.json": `{"dependencies": {"express": "^4.0.0"}}`,
			},
			want: "Express",
		},
		{
			name: "react beats express",
			files: map[string]string{
				"package.json": `{"dependencies": {"express": "^4.0.0", "react": "^18.0.0"}}`,
			},
			want: "React",
		},
		{
			name: "gin go project",
			files: map[string]string{
				"go.mod": "module example.com/app\n\ngo 1.22\n\nrequire github.com/gin-gonic/gin v1.9.1\n",
			},
			want: "Gin",
		},
		{
			name: "plain go project",
			files: map[string]string{
				"go.mod": "module example.com/app\n\ngo 1.22\n",
			},
			want: "Go",
		},
		{
			name:  "django beats package.json",
			files: map[string]string{"manage.py": "", "package.json": `{"dependencies": {"react": "1"}}`},
			want:  "Django",
		},
		{
			name: "malformed manifest falls through",
			files: map[string]string{
				"package.json": `{not json`,
			},
			want: FrameworkUnknown,
		},
		{
			name:  "nothing matches",
			files: map[string]string{"main.py": ""},
			want:  FrameworkUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			for rel, content := range tt.files {
				writeFile(t, root, rel, content)
			}
			assert.Equal(t, tt.want, DetectFramework(root))
		})
	}
}

package template

import (
	"testing"

	"github.com/scarff-dev/scarff/internal/target"
)

func testResolution(t *testing.T, raw target.Raw) *target.Resolution {
	t.Helper()
	res, err := target.NewResolver(target.NewMatrix()).Resolve(raw)
	if err != nil {
		t.Fatalf("Resolve(%+v): %v", raw, err)
	}
	return res
}

func TestNewContext(t *testing.T) {
	res := testResolution(t, target.Raw{Language: "rust", Type: "web-backend"})
	ctx := NewContext("my-cool-app", res, "1.2.0")

	if ctx.ProjectName != "my-cool-app" {
		t.Errorf("ProjectName = %q", ctx.ProjectName)
	}
	if ctx.ProjectNameSnake != "my_cool_app" {
		t.Errorf("ProjectNameSnake = %q, want my_cool_app", ctx.ProjectNameSnake)
	}
	if ctx.ProjectNameKebab != "my-cool-app" {
		t.Errorf("ProjectNameKebab = %q, want my-cool-app", ctx.ProjectNameKebab)
	}
	if ctx.ProjectNamePascal != "MyCoolApp" {
		t.Errorf("ProjectNamePascal = %q, want MyCoolApp", ctx.ProjectNamePascal)
	}
	if ctx.Language != "rust" || ctx.Framework != "axum" {
		t.Errorf("tuple fields = %s/%s, want rust/axum", ctx.Language, ctx.Framework)
	}
	if ctx.Port != 3000 {
		t.Errorf("Port = %d, want 3000", ctx.Port)
	}
	if ctx.Version != "1.2.0" {
		t.Errorf("Version = %q", ctx.Version)
	}
}

func TestCasings(t *testing.T) {
	tests := []struct {
		name   string
		snake  string
		kebab  string
		pascal string
	}{
		{"myapp", "myapp", "myapp", "Myapp"},
		{"my-app", "my_app", "my-app", "MyApp"},
		{"my_app", "my_app", "my-app", "MyApp"},
		{"myApp", "my_app", "my-app", "MyApp"},
		{"MyHTTPServer", "my_http_server", "my-http-server", "MyHttpServer"},
		{"my cool app", "my_cool_app", "my-cool-app", "MyCoolApp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toSnakeCase(tt.name); got != tt.snake {
				t.Errorf("toSnakeCase(%q) = %q, want %q", tt.name, got, tt.snake)
			}
			if got := toKebabCase(tt.name); got != tt.kebab {
				t.Errorf("toKebabCase(%q) = %q, want %q", tt.name, got, tt.kebab)
			}
			if got := toPascalCase(tt.name); got != tt.pascal {
				t.Errorf("toPascalCase(%q) = %q, want %q", tt.name, got, tt.pascal)
			}
		})
	}
}

func TestDerivePackageName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"myapp", "myapp"},
		{"my-app", "my_app"},
		{"My.App", "my_app"},
		{"1app", "_1app"},
	}

	for _, tt := range tests {
		if got := derivePackageName(tt.name); got != tt.want {
			t.Errorf("derivePackageName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestContextVarsCoverAllFields(t *testing.T) {
	res := testResolution(t, target.Raw{Language: "go"})
	vars := NewContext("demo", res, "0.0.1").vars()

	for _, key := range []string{
		"ProjectName", "ProjectNameSnake", "ProjectNameKebab", "ProjectNamePascal",
		"PackageName", "Language", "Type", "Architecture", "Framework",
		"Port", "Year", "Version",
	} {
		if _, ok := vars[key]; !ok {
			t.Errorf("vars() missing key %q", key)
		}
	}
}

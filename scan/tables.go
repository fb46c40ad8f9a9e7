// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package scan

// defaultExtensions lists file extensions (lowercase, with leading dot)
// whose files are always checkable.
var defaultExtensions = map[string]bool{
	// C and C++.
	".cpp": true, ".hpp": true, ".cc": true, ".cxx": true, ".hxx": true,
	".h": true, ".c": true,
	// Go.
	".go": true, ".mod": true, ".sum": true,
	// Python.
	".py": true, ".pyx": true, ".pyi": true,
	// JavaScript and TypeScript.
	".js": true, ".ts": true, ".jsx": true, ".tsx": true,
	// Stylesheets.
	".css": true, ".scss": true, ".sass": true, ".less": true,
	// Markup.
	".html": true, ".htm": true, ".xml": true, ".svg": true,
	// Data formats.
	".json": true, ".yaml": true, ".yml": true, ".toml": true,
	// Documentation.
	".md": true, ".rst": true, ".txt": true,
	// Shell scripts.
	".sh": true, ".bash": true, ".zsh": true, ".fish": true,
	// Build files.
	".cmake": true, ".cmake.in": true,
	// Protocol definitions.
	".proto": true, ".capnp": true,
	// Database.
	".sql": true, ".sqlite": true,
	// Configuration.
	".conf": true, ".cfg": true, ".ini": true,
	// Git files.
	".gitignore": true, ".gitattributes": true,
}

// specialFiles lists well-known unextensioned build and config files that
// are checkable regardless of extension.
var specialFiles = map[string]bool{
	"Makefile":         true,
	"CMakeLists.txt":   true,
	"Dockerfile":       true,
	"Vagrantfile":      true,
	"Jenkinsfile":      true,
	"Pipfile":          true,
	"requirements.txt": true,
	"setup.py":         true,
	"pyproject.toml":   true,
	"package.json":     true,
	"tsconfig.json":    true,
	"go.mod":           true,
	"go.sum":           true,
}

// defaultExcludes lists glob patterns for directories and files that are
// never checked: build output, VCS metadata, caches, binary artifacts, and
// editor swap files.
var defaultExcludes = []string{
	"build", "cmake-build-*", "_deps", "CMakeFiles",
	".git", ".svn", ".hg", ".bzr",
	"__pycache__", "*.pyc", "*.pyo", "*.pyd",
	"*.so", "*.dll", "*.dylib", "*.exe",
	"*.o", "*.obj", "*.a", "*.lib",
	"*.png", "*.jpg", "*.jpeg", "*.gif", "*.bmp", "*.ico",
	"*.pdf", "*.zip", "*.tar", "*.gz", "*.bz2",
	"node_modules", ".venv", "venv", ".env",
	".idea", ".vscode", "*.swp", "*.swo", "*~",
}

// rootMarkers lists build files that identify a project root.
var rootMarkers = []string{
	"go.mod",
	"CMakeLists.txt",
	"Cargo.toml",
	"package.json",
	"Makefile",
	".git",
}

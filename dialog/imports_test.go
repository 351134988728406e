package dialog

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The dialog core and the packages it imports must build without cgo or a
// display, so none of them may pull in the game engine.
func TestCoreAvoidsEngineImports(t *testing.T) {
	for _, dir := range []string{".", "../config", "../fonts"} {
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		require.NoError(t, err)
		require.NotEmpty(t, files, dir)

		for _, name := range files {
			if strings.HasSuffix(name, "_test.go") {
				continue
			}
			f, err := parser.ParseFile(token.NewFileSet(), name, nil, parser.ImportsOnly)
			require.NoError(t, err)
			for _, imp := range f.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				require.NoError(t, err)
				assert.NotContains(t, path, "hajimehoshi/ebiten", name)
				assert.NotContains(t, path, "yohamta/donburi", name)
			}
		}
	}
}

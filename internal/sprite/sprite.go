package sprite

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sprite is a multi-line text logo. Art lines are rendered as-is; styling
// belongs to the renderers.
type Sprite struct {
	Name string
	Art  string
}

var builtins = map[string]string{
	"dvd": ` ____  _   _ ____
|  _ \| | | |  _ \
| | | | | | | | | |
| |_| | \ V /| |_| |
|____/   \_/ |____/`,
	"go": `  ____  ___
 / ___|/ _ \
| |  _| | | |
| |_| | |_| |
 \____|\___/`,
	"heart": `  **   **
 **** ****
 *********
  *******
   *****
    ***
     *`,
	"block": `▓▓▓▓▓▓
▓▓▓▓▓▓
▓▓▓▓▓▓`,
	"dot": `●`,
}

// Builtin looks up one of the embedded logos.
func Builtin(name string) (Sprite, bool) {
	art, ok := builtins[name]
	if !ok {
		return Sprite{}, false
	}
	return Sprite{Name: name, Art: art}, true
}

// Names lists the embedded logos, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads a custom logo from a text file. Trailing blank lines are
// dropped so the measured height matches what gets drawn.
func Load(path string) (Sprite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Sprite{}, err
	}
	art := strings.TrimRight(string(data), "\n")
	if art == "" {
		return Sprite{}, fmt.Errorf("empty sprite file: %s", path)
	}
	return Sprite{Name: path, Art: art}, nil
}

// Resolve returns the builtin logo named by name, or loads name as a file
// path when no builtin matches.
func Resolve(name string) (Sprite, error) {
	if s, ok := Builtin(name); ok {
		return s, nil
	}
	s, err := Load(name)
	if err != nil {
		return Sprite{}, fmt.Errorf("unknown logo %q (builtins: %s)", name, strings.Join(Names(), ", "))
	}
	return s, nil
}

// Size measures the rendered cell extent of the art.
func (s Sprite) Size() (w, h int) {
	return lipgloss.Width(s.Art), lipgloss.Height(s.Art)
}

// Lines splits the art for row-by-row compositing.
func (s Sprite) Lines() []string {
	return strings.Split(s.Art, "\n")
}

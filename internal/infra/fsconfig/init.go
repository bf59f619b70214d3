package fsconfig

import (
	"embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/cahanap/cj-s-table-cipher/internal/domain"
	"github.com/cahanap/cj-s-table-cipher/internal/ports"
)

//go:embed templates/tablecipher.yaml
var templatesFS embed.FS

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.ConfigInitializer = (*Initializer)(nil)

// Init writes root/tablecipher.yaml from the bundled template and makes sure
// the log directory is git-ignored. An existing config is kept unless force.
func (i *Initializer) Init(root string, force bool) error {
	root = filepath.Clean(root)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return &domain.OpError{Op: "fsconfig.init", Kind: domain.KindExecution, Path: root, Err: err}
	}

	if err := ensureGitignore(root); err != nil {
		return &domain.OpError{Op: "fsconfig.gitignore", Kind: domain.KindExecution, Path: root, Err: err}
	}

	dst := filepath.Join(root, "tablecipher.yaml")
	if !force {
		if _, statErr := os.Stat(dst); statErr == nil {
			return nil
		}
	}

	b, err := templatesFS.ReadFile("templates/tablecipher.yaml")
	if err != nil {
		return &domain.OpError{Op: "fsconfig.template", Kind: domain.KindExecution, Err: err}
	}
	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return &domain.OpError{Op: "fsconfig.write", Kind: domain.KindExecution, Path: dst, Err: err}
	}
	return nil
}

func ensureGitignore(root string) error {
	const header = "# tablecipher"
	entries := []string{
		".tablecipher/",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 32)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}

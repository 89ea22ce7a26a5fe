package pipewire

import (
	"context"
	"os"
	"strings"

	"pwquick/internal/pwdump"
	"pwquick/internal/services"
)

// FileSource reads a previously saved pw-dump document. It lets the read-only
// commands run against captured graphs without a live server.
type FileSource struct {
	Path string
}

// Acquire reads and decodes the file on every call.
func (f FileSource) Acquire(ctx context.Context) (pwdump.Dump, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := strings.TrimSpace(f.Path)
	if path == "" {
		return nil, services.Wrap(services.ErrConfiguration, "dump-file", "acquire", "empty path", nil)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, services.Wrap(services.ErrSourceUnavailable, "dump-file", "open", path, err)
	}
	defer file.Close()

	dump, err := pwdump.Read(file)
	if err != nil {
		return nil, services.Wrap(services.ErrSourceUnavailable, "dump-file", "decode", path, err)
	}
	return dump, nil
}

package run

import (
	"fmt"

	"github.com/Kush-Singh-26/agora/builder/output"
)

// copyMedia mirrors layout/media into the deploy tree.
func (b *Builder) copyMedia() (int, error) {
	cfg := b.cfg
	n, err := output.CopyMedia(b.SourceFs, b.DestFs, cfg.MediaDir(), cfg.DeployPath())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		fmt.Printf("   🖼️  Copied %d media files\n", n)
	}
	return n, nil
}

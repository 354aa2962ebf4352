package bazel

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/buildgridgo/internal/nodeid"
)

// writeStubs writes all FilesPerTarget header/implementation pairs for a
// node in one pass. Each header re-encodes the node's dependency edges as
// module imports, so the build system has to resolve every edge both from
// the BUILD file and from the sources.
func (e *Emitter) writeStubs(libDir string, node nodeid.Address) error {
	libName := node.LibName()
	children := node.Children()

	for i := uint64(1); i <= e.Cfg.FilesPerTarget; i++ {
		var hdr strings.Builder
		hdr.WriteString("@import Foundation;\n")
		for _, child := range children {
			fmt.Fprintf(&hdr, "@import %s;\n", child.LibName())
		}
		fmt.Fprintf(&hdr, "@interface %s_Hdr%d_Class : NSObject\n@end\n", libName, i)

		hdrPath := filepath.Join(libDir, fmt.Sprintf("%s_Hdr%d.h", libName, i))
		if err := os.WriteFile(hdrPath, []byte(hdr.String()), 0o644); err != nil {
			return fmt.Errorf("failed to write header stub for %s: %w", node.String(), err)
		}

		var src strings.Builder
		fmt.Fprintf(&src, "#include \"%s/%s_Hdr%d.h\"\n", libName, libName, i)
		fmt.Fprintf(&src, "@implementation %s_Hdr%d_Class\n@end\n", libName, i)

		srcPath := filepath.Join(libDir, fmt.Sprintf("%s_Src%d.m", libName, i))
		if err := os.WriteFile(srcPath, []byte(src.String()), 0o644); err != nil {
			return fmt.Errorf("failed to write source stub for %s: %w", node.String(), err)
		}
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/tmczar/texpath/internal/status"
)

// Status shows the completion environment for a document: logical root,
// scan roots, configuration, registered commands.
func Status(docPath string) error {
	data, err := status.Collect(docPath)
	if err != nil {
		return err
	}

	fmt.Println(status.Render(data))
	return nil
}

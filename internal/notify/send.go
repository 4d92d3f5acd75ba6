package notify

import (
	"fmt"

	"github.com/nicholas-fedor/shoutrrr"
	"github.com/nicholas-fedor/shoutrrr/pkg/types"
)

// Send delivers the batch summary to a Shoutrrr service URL
// (telegram://..., discord://..., smtp://... and so on).
func Send(url, message string) error {
	sender, err := shoutrrr.CreateSender(url)
	if err != nil {
		return fmt.Errorf("creating sender: %w", err)
	}

	params := types.Params{}
	for _, e := range sender.Send(message, &params) {
		if e != nil {
			return fmt.Errorf("sending notification: %w", e)
		}
	}

	return nil
}

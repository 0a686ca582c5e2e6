package commands

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrAdvanceFulfillmentCommandIsNotConstructed = errors.New(
	"AdvanceFulfillmentCommand must be created via NewAdvanceFulfillmentCommand constructor",
)

// maxFulfillmentBatchSize caps how many orders a single run may advance
// per status.
const maxFulfillmentBatchSize = 500

// AdvanceFulfillmentCommand represents one run of the fulfillment sweep.
// Each run moves a batch of pending orders into processing and ships the
// processing orders that have dwelled long enough.
type AdvanceFulfillmentCommand struct { //nolint:recvcheck //using for validation
	batchSize int
	dwell     time.Duration

	guard guard.ConstructorGuard
}

// NewAdvanceFulfillmentCommand creates a fulfillment sweep command.
// The dwell is how long an order must have existed before the sweep picks
// it up, which gives owners a cancellation window.
func NewAdvanceFulfillmentCommand(batchSize int, dwell time.Duration) (AdvanceFulfillmentCommand, error) {
	fulfillmentCommand := AdvanceFulfillmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		fulfillmentCommand.setBatchSize(batchSize),
		fulfillmentCommand.setDwell(dwell),
	); err != nil {
		return AdvanceFulfillmentCommand{}, err
	}

	return fulfillmentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceFulfillmentCommandIsNotConstructed)
}

// BatchSize returns the maximum number of orders advanced per status.
func (c AdvanceFulfillmentCommand) BatchSize() int {
	return c.batchSize
}

// Dwell returns the minimum age an order must reach before it is advanced.
func (c AdvanceFulfillmentCommand) Dwell() time.Duration {
	return c.dwell
}

func (c *AdvanceFulfillmentCommand) setBatchSize(batchSize int) error {
	if batchSize < 1 || batchSize > maxFulfillmentBatchSize {
		return errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, maxFulfillmentBatchSize)
	}

	c.batchSize = batchSize
	return nil
}

func (c *AdvanceFulfillmentCommand) setDwell(dwell time.Duration) error {
	if dwell < 0 {
		return errs.NewValueIsInvalidError("dwell")
	}

	c.dwell = dwell
	return nil
}

package actions

import (
	"context"
)

type IAction interface {
	Perform(ctx context.Context) error
}

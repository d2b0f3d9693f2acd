package httpapi_test

import (
	"context"
	"fmt"

	"pizzadesk/order-svc/internal/service"
)

func sprintf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

func runTx(tx service.OrderTx) func(context.Context, func(service.OrderTx) error) error {
	return func(_ context.Context, fn func(service.OrderTx) error) error {
		return fn(tx)
	}
}

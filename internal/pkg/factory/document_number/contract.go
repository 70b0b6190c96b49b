//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=document_number_test
package document_number

import "context"

// Counter atomically increments the sequence of scope and returns the new value.
type Counter interface {
	NextValue(ctx context.Context, scope string) (int64, error)
}

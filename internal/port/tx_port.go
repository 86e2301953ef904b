package port

import "context"

type IsolationLevel string

const (
	IsolationDefault      IsolationLevel = ""
	IsolationSerializable IsolationLevel = "serializable"
)

// Transactor runs fn as one unit of work. Repository calls made with the
// context passed to fn join the transaction; nested calls reuse it.
type Transactor interface {
	InTx(ctx context.Context, level IsolationLevel, fn func(ctx context.Context) error) error
}

package commands

import (
	"context"
	"fmt"
	"runtime"

	"github.com/dustin/go-humanize"
)

// DefaultAllocSize is the number of ints the alloc command allocates.
const DefaultAllocSize = 10_000_000

// GCStats reports heap usage of the running process.
func GCStats(ctx context.Context, cmdCtx *CommandContext) error {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	_, err := fmt.Fprintf(cmdCtx.Out, "Память: used=%s free=%s total=%s (сборок мусора: %d)\n",
		humanize.IBytes(ms.HeapInuse),
		humanize.IBytes(ms.HeapIdle),
		humanize.IBytes(ms.HeapSys),
		ms.NumGC,
	)
	return err
}

// AllocHandler allocates and fills a large slice to give the garbage
// collector something to do.
type AllocHandler struct {
	size int
}

func NewAllocHandler(size int) *AllocHandler {
	if size <= 0 {
		size = DefaultAllocSize
	}
	return &AllocHandler{size: size}
}

func (h *AllocHandler) Exec(ctx context.Context, cmdCtx *CommandContext) error {
	fmt.Fprintln(cmdCtx.Out, "Создаю большой массив для демонстрации GC...")

	arr := make([]int, h.size)
	for i := range arr {
		arr[i] = i
	}
	runtime.KeepAlive(arr)

	_, err := fmt.Fprintln(cmdCtx.Out, "Массив создан")
	return err
}

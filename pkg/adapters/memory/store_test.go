package memory_test

import (
	"testing"

	"github.com/aretw0/failtrace/pkg/adapters/memory"
	"github.com/aretw0/failtrace/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunKVStoreContract(t, store)
}

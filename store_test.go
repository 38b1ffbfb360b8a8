package ircdconf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigurationStoreSnapshotCounts(t *testing.T) {
	store := NewConfigurationStore()
	store.Classes = append(store.Classes, &ClassRecord{Name: "default"})
	store.Opers = append(store.Opers, &OperRecord{Name: "admin"})

	counts := store.snapshotCounts()
	require.Equal(t, 1, counts["classes"])
	require.Equal(t, 1, counts["opers"])
	require.Equal(t, 0, counts["links"])
}

func TestConfigurationStoreConcurrentReadWrite(t *testing.T) {
	store := NewConfigurationStore()
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			store.withWriteLock(func() {
				store.Classes = append(store.Classes, &ClassRecord{Name: "x"})
			})
		}
		close(done)
	}()
	for i := 0; i < 100; i++ {
		store.FindClass("default")
	}
	<-done
	require.Len(t, store.Classes, 100)
}

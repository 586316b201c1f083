package projectstore

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/specialistvlad/usagesearch/internal/model"
	"github.com/specialistvlad/usagesearch/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_FindProjectByExternalID(t *testing.T) {
	ctx := context.Background()
	leaf := testutil.Project("leaf", "Leaf")
	root := testutil.Project("root", "Root").WithSubProject(testutil.Project("mid", "Mid").WithSubProject(leaf))
	store := New()

	require.NoError(t, store.Replace(ctx, root))

	found, ok := store.FindProjectByExternalID(ctx, "leaf")
	require.True(t, ok)
	assert.Equal(t, "Root :: Mid :: Leaf", found.FullName())
	assert.Equal(t, 3, store.Len())

	_, ok = store.FindProjectByExternalID(ctx, "missing")
	assert.False(t, ok)
}

func TestStore_DuplicateIDKeepsPreviousContent(t *testing.T) {
	ctx := context.Background()
	store := New()
	require.NoError(t, store.Replace(ctx, testutil.Project("a", "A")))

	err := store.Replace(ctx, testutil.Project("b", "B"), testutil.Project("b", "Other B"))

	require.ErrorContains(t, err, `duplicate project id "b"`)
	_, ok := store.FindProjectByExternalID(ctx, "a")
	assert.True(t, ok)
	assert.Len(t, store.Roots(ctx), 1)
}

func TestStore_ListingErrorIsReturned(t *testing.T) {
	boom := errors.New("boom")
	broken := testutil.FailingProject{ProjectNode: model.NewProject("x", "X"), Err: boom}

	err := New().Replace(context.Background(), broken)

	assert.ErrorIs(t, err, boom)
}

func TestStore_ConcurrentReadsDuringReplace(t *testing.T) {
	ctx := context.Background()
	store := New()
	require.NoError(t, store.Replace(ctx, testutil.Project("root", "Root")))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, ok := store.FindProjectByExternalID(ctx, "root")
			assert.True(t, ok)
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Replace(ctx, testutil.Project("root", "Root")))
		}()
	}
	wg.Wait()
}

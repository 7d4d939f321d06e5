package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTagsDedupesAndReuses(t *testing.T) {
	factory, _, tagSvc, _, _ := newTestServices()
	ctx := context.Background()
	owner := uuid.New()
	uow := factory.NewUnitOfWork(ctx)

	tags, err := tagSvc.Resolve(ctx, uow, owner, []string{"x", "x", "y"})
	require.NoError(t, err)
	require.Len(t, tags, 2, "duplicate names collapse to one row")
	assert.Equal(t, "x", tags[0].Name)
	assert.Equal(t, "y", tags[1].Name)
	assert.Len(t, factory.store.tags, 2)

	again, err := tagSvc.Resolve(ctx, uow, owner, []string{"y", "z"})
	require.NoError(t, err)
	require.Len(t, again, 2)
	assert.Equal(t, tags[1].Id, again[0].Id, "an existing name resolves to the same row")
	assert.Len(t, factory.store.tags, 3, "only the new name creates a row")
}

func TestResolveTagsSkipsEmptyNames(t *testing.T) {
	factory, _, tagSvc, _, _ := newTestServices()
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	tags, err := tagSvc.Resolve(ctx, uow, uuid.New(), []string{"", "real"})
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "real", tags[0].Name)
}

func TestTagNamesAreScopedPerOwner(t *testing.T) {
	factory, _, tagSvc, _, _ := newTestServices()
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()
	uow := factory.NewUnitOfWork(ctx)

	aliceTags, err := tagSvc.Resolve(ctx, uow, alice, []string{"shared"})
	require.NoError(t, err)
	bobTags, err := tagSvc.Resolve(ctx, uow, bob, []string{"shared"})
	require.NoError(t, err)

	assert.NotEqual(t, aliceTags[0].Id, bobTags[0].Id, "same name, different owners, different rows")
	assert.Len(t, factory.store.tags, 2)
}

func TestListTags(t *testing.T) {
	factory, _, tagSvc, _, _ := newTestServices()
	ctx := context.Background()
	owner := uuid.New()
	uow := factory.NewUnitOfWork(ctx)

	_, err := tagSvc.Resolve(ctx, uow, owner, []string{"b", "a"})
	require.NoError(t, err)
	_, err = tagSvc.Resolve(ctx, uow, uuid.New(), []string{"foreign"})
	require.NoError(t, err)

	listed, err := tagSvc.ListTags(ctx, owner)
	require.NoError(t, err)
	require.Len(t, listed, 2, "listing only returns the caller's tags")
	assert.Equal(t, "b", listed[0].Name)
	assert.Equal(t, "a", listed[1].Name)
}

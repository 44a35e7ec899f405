package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/projectstest"
)

func project(id string) domain.Project {
	return domain.Project{
		ID: id, Title: "T", ShortDescription: "s", FullDescription: "f",
		ImageURL: "u", Category: "c", Location: "l", Year: 2024,
	}
}

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates then reads back the same fields", func(t *testing.T) {
		svc := NewProjectService(projectstest.NewRepo())
		p := project("x1")

		created, err := svc.Create(ctx, &p)
		require.NoError(t, err)
		assert.Equal(t, p, *created)

		got, err := svc.Get(ctx, "x1")
		require.NoError(t, err)
		assert.Equal(t, p, *got)
	})

	t.Run("duplicate id is rejected and original kept", func(t *testing.T) {
		original := project("x1")
		svc := NewProjectService(projectstest.NewRepo(original))

		dup := project("x1")
		dup.Title = "Other"
		_, err := svc.Create(ctx, &dup)
		assert.ErrorIs(t, err, domain.ErrProjectExists)

		got, err := svc.Get(ctx, "x1")
		require.NoError(t, err)
		assert.Equal(t, "T", got.Title)
	})

	t.Run("store errors propagate", func(t *testing.T) {
		repo := projectstest.NewRepo()
		repo.Err = errors.New("db down")
		svc := NewProjectService(repo)

		p := project("x1")
		_, err := svc.Create(ctx, &p)
		assert.EqualError(t, err, "db down")
	})
}

func TestProjectService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		svc := NewProjectService(projectstest.NewRepo(project("x1")))

		title := "New title"
		got, err := svc.Update(ctx, "x1", domain.ProjectPatch{Title: &title})
		require.NoError(t, err)

		want := project("x1")
		want.Title = "New title"
		assert.Equal(t, want, *got)

		stored, err := svc.Get(ctx, "x1")
		require.NoError(t, err)
		assert.Equal(t, want, *stored)
	})

	t.Run("missing project", func(t *testing.T) {
		svc := NewProjectService(projectstest.NewRepo())
		_, err := svc.Update(ctx, "nope", domain.ProjectPatch{})
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	})
}

func TestProjectService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(projectstest.NewRepo(project("a"), project("b"), project("c")))

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{items[0].ID, items[1].ID, items[2].ID})

	require.NoError(t, svc.Delete(ctx, "b"))
	_, err = svc.Get(ctx, "b")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "b"), domain.ErrProjectNotFound)

	items, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

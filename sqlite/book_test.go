package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/wordshelf"
	"github.com/fwojciec/wordshelf/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRanking() wordshelf.Ranking {
	return wordshelf.Ranking{
		{Word: "whale", Frequency: 12},
		{Word: "ahab", Frequency: 7},
		{Word: "ship", Frequency: 7},
		{Word: "ocean", Frequency: 3},
	}
}

func TestBookService_CreateBook(t *testing.T) {
	t.Parallel()

	t.Run("creates book with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookService(db)
		ctx := context.Background()

		book := &wordshelf.Book{
			Title:     "Moby Dick",
			SourceURL: "https://www.gutenberg.org/files/2701/2701-0.txt",
			Ranking:   testRanking(),
		}

		err := svc.CreateBook(ctx, book)
		require.NoError(t, err)

		assert.NotEmpty(t, book.ID, "ID should be generated")
		assert.False(t, book.CreatedAt.IsZero(), "CreatedAt should be set")
	})

	t.Run("returns EINVALID for missing title", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookService(db)
		ctx := context.Background()

		err := svc.CreateBook(ctx, &wordshelf.Book{})
		require.Error(t, err)
		assert.Equal(t, wordshelf.EINVALID, wordshelf.ErrorCode(err))
	})

	t.Run("returns ECONFLICT for duplicate title", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookService(db)
		ctx := context.Background()

		first := &wordshelf.Book{Title: "Moby Dick", Ranking: testRanking()}
		require.NoError(t, svc.CreateBook(ctx, first))

		second := &wordshelf.Book{
			Title:   "Moby Dick",
			Ranking: wordshelf.Ranking{{Word: "other", Frequency: 1}},
		}
		err := svc.CreateBook(ctx, second)
		require.Error(t, err)
		assert.Equal(t, wordshelf.ECONFLICT, wordshelf.ErrorCode(err))

		// The first ranking remains stored and unchanged.
		ranking, err := svc.FindRankingByTitle(ctx, "Moby Dick")
		require.NoError(t, err)
		assert.Equal(t, testRanking(), ranking)
	})

	t.Run("conflicts on titles differing only in case", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateBook(ctx, &wordshelf.Book{Title: "hamlet"}))

		err := svc.CreateBook(ctx, &wordshelf.Book{Title: "Hamlet"})
		require.Error(t, err)
		assert.Equal(t, wordshelf.ECONFLICT, wordshelf.ErrorCode(err))
	})

	t.Run("accepts an empty ranking", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateBook(ctx, &wordshelf.Book{Title: "Blank Pages"}))

		ranking, err := svc.FindRankingByTitle(ctx, "Blank Pages")
		require.NoError(t, err)
		assert.Empty(t, ranking)
	})
}

func TestBookService_FindRankingByTitle(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a ranking case-insensitively", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookService(db)
		ctx := context.Background()

		book := &wordshelf.Book{Title: "Moby Dick", Ranking: testRanking()}
		require.NoError(t, svc.CreateBook(ctx, book))

		ranking, err := svc.FindRankingByTitle(ctx, "moby dick")
		require.NoError(t, err)
		assert.Equal(t, testRanking(), ranking)
	})

	t.Run("re-sorts by frequency regardless of insertion order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookService(db)
		ctx := context.Background()

		book := &wordshelf.Book{
			Title: "Shuffled",
			Ranking: wordshelf.Ranking{
				{Word: "rare", Frequency: 1},
				{Word: "common", Frequency: 9},
				{Word: "middling", Frequency: 4},
			},
		}
		require.NoError(t, svc.CreateBook(ctx, book))

		ranking, err := svc.FindRankingByTitle(ctx, "Shuffled")
		require.NoError(t, err)
		assert.Equal(t, wordshelf.Ranking{
			{Word: "common", Frequency: 9},
			{Word: "middling", Frequency: 4},
			{Word: "rare", Frequency: 1},
		}, ranking)
	})

	t.Run("preserves ranking order for equal frequencies", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookService(db)
		ctx := context.Background()

		book := &wordshelf.Book{
			Title: "Tied",
			Ranking: wordshelf.Ranking{
				{Word: "zulu", Frequency: 2},
				{Word: "echo", Frequency: 2},
				{Word: "alfa", Frequency: 2},
			},
		}
		require.NoError(t, svc.CreateBook(ctx, book))

		ranking, err := svc.FindRankingByTitle(ctx, "Tied")
		require.NoError(t, err)
		assert.Equal(t, book.Ranking, ranking)
	})

	t.Run("returns ENOTFOUND for unknown title", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookService(db)
		ctx := context.Background()

		_, err := svc.FindRankingByTitle(ctx, "Nonexistent Title")
		require.Error(t, err)
		assert.Equal(t, wordshelf.ENOTFOUND, wordshelf.ErrorCode(err))
	})
}

func TestBookService_FindBooks(t *testing.T) {
	t.Parallel()

	t.Run("returns all books with empty filter", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookService(db)
		ctx := context.Background()

		for _, title := range []string{"Dracula", "Frankenstein", "Carmilla"} {
			require.NoError(t, svc.CreateBook(ctx, &wordshelf.Book{Title: title}))
		}

		books, err := svc.FindBooks(ctx, wordshelf.BookFilter{})
		require.NoError(t, err)
		assert.Len(t, books, 3)
	})

	t.Run("filters by title", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateBook(ctx, &wordshelf.Book{Title: "Dracula"}))
		require.NoError(t, svc.CreateBook(ctx, &wordshelf.Book{Title: "Frankenstein"}))

		title := "dracula"
		books, err := svc.FindBooks(ctx, wordshelf.BookFilter{Title: &title})
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "Dracula", books[0].Title)
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookService(db)
		ctx := context.Background()

		for _, title := range []string{"One", "Two", "Three", "Four", "Five"} {
			require.NoError(t, svc.CreateBook(ctx, &wordshelf.Book{Title: title}))
		}

		books, err := svc.FindBooks(ctx, wordshelf.BookFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, books, 2)
	})
}

func TestBookService_DeleteBook(t *testing.T) {
	t.Parallel()

	t.Run("deletes book and its word rows", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookService(db)
		ctx := context.Background()

		book := &wordshelf.Book{Title: "Moby Dick", Ranking: testRanking()}
		require.NoError(t, svc.CreateBook(ctx, book))

		require.NoError(t, svc.DeleteBook(ctx, "moby dick"))

		_, err := svc.FindRankingByTitle(ctx, "Moby Dick")
		assert.Equal(t, wordshelf.ENOTFOUND, wordshelf.ErrorCode(err))

		var count int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM words WHERE title = 'Moby Dick'").Scan(&count)
		require.NoError(t, err)
		assert.Zero(t, count, "word rows should cascade")
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewBookService(db)
		ctx := context.Background()

		err := svc.DeleteBook(ctx, "nonexistent")
		require.Error(t, err)
		assert.Equal(t, wordshelf.ENOTFOUND, wordshelf.ErrorCode(err))
	})
}

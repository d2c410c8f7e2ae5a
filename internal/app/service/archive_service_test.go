package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonandton/report-tracking/internal/core/domain"
)

func TestResetDay_EmptyDayArchivesNothing(t *testing.T) {
	env := newTestEnv(t, newTestStore(t), ArchiveOptions{})
	ctx := context.Background()

	result, err := env.archive.ResetDay(ctx)
	require.NoError(t, err)
	assert.False(t, result.Archived)
	assert.Nil(t, result.Entry)

	history, err := env.archive.ListHistory(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, history)

	// An empty day leaves no entry, so a later reset the same day still works.
	env.createTask(t, "late addition", "")
	result, err = env.archive.ResetDay(ctx)
	require.NoError(t, err)
	assert.True(t, result.Archived)
}

func TestResetDay_ArchivesAndClears(t *testing.T) {
	env := newTestEnv(t, newTestStore(t), ArchiveOptions{})
	ctx := context.Background()

	a := env.createTask(t, "A", "low")
	b := env.createTask(t, "B", "high")
	_, err := env.tasks.ToggleTask(ctx, b.ID)
	require.NoError(t, err)
	_, err = env.reports.SaveReport(ctx, "did work")
	require.NoError(t, err)

	result, err := env.archive.ResetDay(ctx)
	require.NoError(t, err)
	require.True(t, result.Archived)
	require.NotNil(t, result.Entry)
	assert.Equal(t, "2026-10-18", result.Entry.Date)
	assert.Equal(t, "did work", result.Entry.Report)
	assert.NotNil(t, result.Entry.ReportDate)
	assert.Equal(t, []string{b.ID, a.ID}, taskIDs(result.Entry.Tasks))

	tasks, err := env.tasks.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	report, err := env.reports.GetReport(ctx)
	require.NoError(t, err)
	assert.True(t, report.IsEmpty())

	history, err := env.archive.ListHistory(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	entry := history[0]
	assert.Equal(t, "2026-10-18", entry.Date)
	assert.Equal(t, "did work", entry.Report)
	require.Len(t, entry.Tasks, 2)
	assert.Equal(t, "B", entry.Tasks[0].Text)
	assert.True(t, entry.Tasks[0].Done)
	assert.Equal(t, "A", entry.Tasks[1].Text)
	assert.False(t, entry.Tasks[1].Done)
}

func TestResetDay_SecondResetConflicts(t *testing.T) {
	env := newTestEnv(t, newTestStore(t), ArchiveOptions{})
	ctx := context.Background()

	env.createTask(t, "first", "")
	_, err := env.archive.ResetDay(ctx)
	require.NoError(t, err)

	leftover := env.createTask(t, "second", "")
	_, err = env.archive.ResetDay(ctx)
	require.ErrorIs(t, err, domain.ErrHistoryConflict)

	_, err = env.archive.ResetDay(ctx)
	require.ErrorIs(t, err, domain.ErrHistoryConflict)

	history, err := env.archive.ListHistory(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Len(t, history[0].Tasks, 1)
	assert.Equal(t, "first", history[0].Tasks[0].Text)

	tasks, err := env.tasks.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, leftover.ID, tasks[0].ID)
}

func TestResetDay_FailedAppendRollsBack(t *testing.T) {
	base := newTestStore(t)
	faulty := &faultyStore{Store: base, appendErr: &domain.StorageError{Op: "insert history entry", Err: errInjected}}
	env := newTestEnv(t, faulty, ArchiveOptions{})
	ctx := context.Background()

	env.createTask(t, "A", "")
	env.createTask(t, "B", "")
	_, err := env.reports.SaveReport(ctx, "did work")
	require.NoError(t, err)

	_, err = env.archive.ResetDay(ctx)
	require.ErrorIs(t, err, domain.ErrStorage)

	tasks, err := base.Tasks().List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	report, found, err := base.Reports().Get(ctx, "2026-10-18")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "did work", report.Summary)

	history, err := base.History().List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, history)

	// Once storage recovers the same day can still be archived.
	faulty.appendErr = nil
	result, err := env.archive.ResetDay(ctx)
	require.NoError(t, err)
	assert.True(t, result.Archived)
}

func TestResetDay_KeepsEarlierReports(t *testing.T) {
	env := newTestEnv(t, newTestStore(t), ArchiveOptions{})
	ctx := context.Background()

	yesterday := env.clock.now.Add(-24 * time.Hour)
	require.NoError(t, env.store.Reports().Insert(ctx, domain.Report{Date: "2026-10-17", Summary: "old", ReportTime: &yesterday}))
	_, err := env.reports.SaveReport(ctx, "today")
	require.NoError(t, err)

	result, err := env.archive.ResetDay(ctx)
	require.NoError(t, err)
	require.True(t, result.Archived)
	assert.Equal(t, "today", result.Entry.Report)
	assert.Empty(t, result.Entry.Tasks)

	reports, err := env.store.Reports().List(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "2026-10-17", reports[0].Date)
}

func TestResetDay_ConcurrentCreatesAreNeverLost(t *testing.T) {
	env := newTestEnv(t, newTestStore(t), ArchiveOptions{})
	ctx := context.Background()
	const writers = 20

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := env.tasks.CreateTask(ctx, domain.CreateTaskInput{Text: fmt.Sprintf("task %d", i)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := env.archive.ResetDay(ctx)
		assert.NoError(t, err)
	}()
	wg.Wait()

	live, err := env.tasks.ListTasks(ctx)
	require.NoError(t, err)
	history, err := env.archive.ListHistory(ctx, 0)
	require.NoError(t, err)

	archived := 0
	for _, entry := range history {
		archived += len(entry.Tasks)
	}
	assert.Equal(t, writers, len(live)+archived)
}

func TestListHistory_Limits(t *testing.T) {
	env := newTestEnv(t, newTestStore(t), ArchiveOptions{HistoryDefaultLimit: 2, HistoryMaxLimit: 3})
	ctx := context.Background()
	appendDays(t, env, 5)

	history, err := env.archive.ListHistory(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "2026-10-17", history[0].Date)
	assert.Equal(t, "2026-10-16", history[1].Date)

	history, err = env.archive.ListHistory(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, history, 3)

	history, err = env.archive.ListHistory(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestKPI_NewestDaysOldestFirst(t *testing.T) {
	env := newTestEnv(t, newTestStore(t), ArchiveOptions{})
	ctx := context.Background()
	appendDays(t, env, 4)

	points, err := env.archive.KPI(ctx, 2)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "2026-10-16", points[0].Date)
	assert.Equal(t, "2026-10-17", points[1].Date)
	assert.Equal(t, domain.KPIPoint{Date: "2026-10-17", Total: 3, Completed: 1, Percent: 33}, points[1])

	points, err = env.archive.KPI(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, points, 4)
}

func TestExport_Counts(t *testing.T) {
	env := newTestEnv(t, newTestStore(t), ArchiveOptions{})
	ctx := context.Background()

	env.createTask(t, "A", "")
	_, err := env.reports.SaveReport(ctx, "yesterday's work")
	require.NoError(t, err)
	_, err = env.archive.ResetDay(ctx)
	require.NoError(t, err)

	env.clock.now = env.clock.now.Add(24 * time.Hour)
	env.createTask(t, "B", "high")
	env.createTask(t, "C", "low")
	_, err = env.reports.SaveReport(ctx, "in progress")
	require.NoError(t, err)

	export, err := env.archive.Export(ctx)
	require.NoError(t, err)
	assert.Len(t, export.Tasks, 2)
	assert.Equal(t, "B", export.Tasks[0].Text)
	assert.Len(t, export.Reports, 1)
	assert.Len(t, export.History, 1)
	assert.True(t, env.clock.now.Equal(export.ExportedAt))
}

// appendDays stores one history entry per day ending 2026-10-17, each with three tasks
// of which the first is done.
func appendDays(t *testing.T, env *testEnv, days int) {
	t.Helper()

	last := time.Date(2026, 10, 17, 22, 0, 0, 0, time.UTC)
	for i := days - 1; i >= 0; i-- {
		archivedAt := last.AddDate(0, 0, -i)
		completed := archivedAt.Add(-time.Hour)
		entry := domain.HistoryEntry{
			Date: domain.DayKey(archivedAt, time.UTC),
			Tasks: []domain.Task{
				{ID: "done", Text: "done", Priority: domain.PriorityMedium, Done: true, CreatedAt: completed, CompletedAt: &completed},
				{ID: "open-1", Text: "open", Priority: domain.PriorityMedium, CreatedAt: completed},
				{ID: "open-2", Text: "open", Priority: domain.PriorityMedium, CreatedAt: completed},
			},
			ArchivedAt: archivedAt,
		}
		require.NoError(t, env.store.History().Append(context.Background(), entry))
	}
}

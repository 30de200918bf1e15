package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/synergysphere/synergysphere/internal/models"
)

func TestCreateTask_StartsInTodo(t *testing.T) {
	db := newTestDB(t)
	owner := registerTestUser(t, db, "task-owner@example.com")
	project := createTestProject(t, db, "Board", owner.ID)
	svc := NewTaskService(db)

	task, err := svc.Create(project.ID, &CreateTaskRequest{Title: "  Write docs  "})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if task.Title != "Write docs" {
		t.Errorf("title not trimmed: got %q", task.Title)
	}
	if task.Status != models.StatusTodo {
		t.Errorf("new task status = %q, expected %q", task.Status, models.StatusTodo)
	}
	if task.AssigneeID != nil {
		t.Errorf("unassigned task should have nil assignee, got %v", *task.AssigneeID)
	}
}

func TestCreateTask_RequiresTitle(t *testing.T) {
	db := newTestDB(t)
	owner := registerTestUser(t, db, "task-title@example.com")
	project := createTestProject(t, db, "Board", owner.ID)

	_, err := NewTaskService(db).Create(project.ID, &CreateTaskRequest{Title: "   "})
	if !IsValidation(err) {
		t.Errorf("expected validation error for blank title, got %v", err)
	}
}

func TestCreateTask_WithAssignee(t *testing.T) {
	db := newTestDB(t)
	owner := registerTestUser(t, db, "task-assign@example.com")
	assignee := registerTestUser(t, db, "assignee@example.com")
	project := createTestProject(t, db, "Board", owner.ID)

	task, err := NewTaskService(db).Create(project.ID, &CreateTaskRequest{
		Title:      "Assigned work",
		AssigneeID: fmt.Sprintf("%d", assignee.ID),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if task.AssigneeID == nil || *task.AssigneeID != assignee.ID {
		t.Errorf("assignee not stored: got %v, expected %d", task.AssigneeID, assignee.ID)
	}
}

func TestCreateTask_RejectsUnknownAssignee(t *testing.T) {
	db := newTestDB(t)
	owner := registerTestUser(t, db, "task-ghost@example.com")
	project := createTestProject(t, db, "Board", owner.ID)
	svc := NewTaskService(db)

	_, err := svc.Create(project.ID, &CreateTaskRequest{Title: "Task", AssigneeID: "9999"})
	if !IsValidation(err) {
		t.Errorf("expected validation error for unknown assignee, got %v", err)
	}

	_, err = svc.Create(project.ID, &CreateTaskRequest{Title: "Task", AssigneeID: "not-a-number"})
	if !IsValidation(err) {
		t.Errorf("expected validation error for malformed assignee, got %v", err)
	}
}

func TestUpdateStatus_MovesBetweenColumns(t *testing.T) {
	db := newTestDB(t)
	owner := registerTestUser(t, db, "status@example.com")
	project := createTestProject(t, db, "Board", owner.ID)
	svc := NewTaskService(db)

	task, err := svc.Create(project.ID, &CreateTaskRequest{Title: "Move me"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	for _, status := range []string{models.StatusInProgress, models.StatusDone, models.StatusTodo} {
		if _, err := svc.UpdateStatus(task.ID, status, owner.ID); err != nil {
			t.Fatalf("UpdateStatus(%q) failed: %v", status, err)
		}
		got, err := svc.GetByID(task.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.Status != status {
			t.Errorf("status = %q, expected %q", got.Status, status)
		}
	}
}

func TestUpdateStatus_RejectsUnknownLiteralAndLeavesRowUnchanged(t *testing.T) {
	db := newTestDB(t)
	owner := registerTestUser(t, db, "badstatus@example.com")
	project := createTestProject(t, db, "Board", owner.ID)
	svc := NewTaskService(db)

	task, err := svc.Create(project.ID, &CreateTaskRequest{Title: "Stay put"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = svc.UpdateStatus(task.ID, "Archived", owner.ID)
	if !IsValidation(err) {
		t.Errorf("expected validation error for unknown status, got %v", err)
	}

	got, err := svc.GetByID(task.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != models.StatusTodo {
		t.Errorf("rejected update must leave the row unchanged, status = %q", got.Status)
	}
}

func TestUpdateStatus_NonMemberDenied(t *testing.T) {
	db := newTestDB(t)
	owner := registerTestUser(t, db, "board-owner@example.com")
	outsider := registerTestUser(t, db, "board-outsider@example.com")
	project := createTestProject(t, db, "Board", owner.ID)
	svc := NewTaskService(db)

	task, err := svc.Create(project.ID, &CreateTaskRequest{Title: "Private"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = svc.UpdateStatus(task.ID, models.StatusDone, outsider.ID)
	if !errors.Is(err, ErrNotMember) {
		t.Errorf("expected ErrNotMember, got %v", err)
	}
}

func TestListByAssignee_CrossesProjects(t *testing.T) {
	db := newTestDB(t)
	owner := registerTestUser(t, db, "multi-owner@example.com")
	p1 := createTestProject(t, db, "One", owner.ID)
	p2 := createTestProject(t, db, "Two", owner.ID)
	svc := NewTaskService(db)

	id := fmt.Sprintf("%d", owner.ID)
	if _, err := svc.Create(p1.ID, &CreateTaskRequest{Title: "A", AssigneeID: id}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(p2.ID, &CreateTaskRequest{Title: "B", AssigneeID: id}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(p2.ID, &CreateTaskRequest{Title: "Unassigned"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	tasks, err := svc.ListByAssignee(owner.ID)
	if err != nil {
		t.Fatalf("ListByAssignee failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("expected 2 assigned tasks, got %d", len(tasks))
	}
}

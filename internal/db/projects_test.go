package db

import (
	"testing"
	"time"
)

func TestCreateProject(t *testing.T) {
	database := openTestDB(t)

	project, err := database.CreateProject("Work", "#3498db")
	if err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}

	if project.ID == 0 {
		t.Error("Expected a storage-assigned id")
	}
	if project.Name != "Work" {
		t.Errorf("Name = %q, want Work", project.Name)
	}
	if project.Color != "#3498db" {
		t.Errorf("Color = %q, want #3498db", project.Color)
	}
	if project.CreatedAt.IsZero() {
		t.Error("Expected a creation timestamp")
	}
}

func TestProjectsOrderedByName(t *testing.T) {
	database := openTestDB(t)

	for _, name := range []string{"Work", "Personal", "Learning"} {
		if _, err := database.CreateProject(name, "#ffffff"); err != nil {
			t.Fatalf("CreateProject failed: %v", err)
		}
	}

	projects, err := database.Projects()
	if err != nil {
		t.Fatalf("Projects failed: %v", err)
	}

	want := []string{"Learning", "Personal", "Work"}
	if len(projects) != len(want) {
		t.Fatalf("Got %d projects, want %d", len(projects), len(want))
	}
	for i, name := range want {
		if projects[i].Name != name {
			t.Errorf("projects[%d].Name = %q, want %q", i, projects[i].Name, name)
		}
	}
}

func TestProjectsEmpty(t *testing.T) {
	database := openTestDB(t)

	projects, err := database.Projects()
	if err != nil {
		t.Fatalf("Projects failed: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("Expected no projects, got %d", len(projects))
	}
}

func TestProjectByID(t *testing.T) {
	database := openTestDB(t)

	created, err := database.CreateProject("Work", "#3498db")
	if err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}

	found, err := database.Project(created.ID)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if found == nil {
		t.Fatal("Expected the project to be found")
	}
	if found.Name != "Work" || found.Color != "#3498db" {
		t.Errorf("Got %+v", found)
	}

	missing, err := database.Project(999)
	if err != nil {
		t.Fatalf("Project lookup of missing id failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for a missing id, got %+v", missing)
	}
}

func TestUpdateProject(t *testing.T) {
	database := openTestDB(t)

	created, err := database.CreateProject("Work", "#3498db")
	if err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}

	if err := database.UpdateProject(created.ID, "Client Work", "#e74c3c"); err != nil {
		t.Fatalf("UpdateProject failed: %v", err)
	}

	found, err := database.Project(created.ID)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if found.Name != "Client Work" || found.Color != "#e74c3c" {
		t.Errorf("Got %+v after update", found)
	}
}

func TestDeleteProjectMissingIsNoop(t *testing.T) {
	database := openTestDB(t)

	if err := database.DeleteProject(999); err != nil {
		t.Errorf("Deleting a missing project should not error, got %v", err)
	}
}

func TestDeleteProjectDetachesEntries(t *testing.T) {
	database := openTestDB(t)

	project, err := database.CreateProject("Work", "#3498db")
	if err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}

	entry, err := database.CreateEntry(&project.ID, "coding", time.Now())
	if err != nil {
		t.Fatalf("CreateEntry failed: %v", err)
	}

	if err := database.DeleteProject(project.ID); err != nil {
		t.Fatalf("DeleteProject failed: %v", err)
	}

	// The entry must survive with its project reference cleared
	kept, err := database.Entry(entry.ID)
	if err != nil {
		t.Fatalf("Entry failed: %v", err)
	}
	if kept == nil {
		t.Fatal("Entry should still exist after its project is deleted")
	}
	if kept.ProjectID != nil {
		t.Errorf("Expected project reference cleared, got %v", *kept.ProjectID)
	}
}

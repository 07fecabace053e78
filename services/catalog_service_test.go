package services

import (
	"testing"

	"github.com/careerbuilder24/e-commerce-project/structs/tables"
	"github.com/google/uuid"
)

func category(name string, parentID *uuid.UUID) tables.Category {
	return tables.Category{
		ID:       uuid.New(),
		Name:     name,
		ParentID: parentID,
		IsActive: true,
	}
}

func TestBuildCategoryTree(t *testing.T) {
	home := category("Home", nil)
	kitchen := category("Kitchen", &home.ID)
	decor := category("Decor", &home.ID)
	cutlery := category("Cutlery", &kitchen.ID)
	fashion := category("Fashion", nil)

	roots := buildCategoryTree([]tables.Category{home, kitchen, decor, cutlery, fashion})

	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
	if roots[0].Name != "Home" || roots[1].Name != "Fashion" {
		t.Errorf("root order = %q, %q", roots[0].Name, roots[1].Name)
	}

	homeNode := roots[0]
	if len(homeNode.Children) != 2 {
		t.Fatalf("Home has %d children, want 2", len(homeNode.Children))
	}
	if homeNode.Children[0].Name != "Kitchen" || homeNode.Children[1].Name != "Decor" {
		t.Errorf("child order = %q, %q", homeNode.Children[0].Name, homeNode.Children[1].Name)
	}
	if len(homeNode.Children[0].Children) != 1 || homeNode.Children[0].Children[0].Name != "Cutlery" {
		t.Error("Cutlery not nested under Kitchen")
	}
}

func TestBuildCategoryTreeOrphanBecomesRoot(t *testing.T) {
	// The parent was filtered out (inactive or deleted); its children
	// still show up at the top level rather than disappearing.
	missingParent := uuid.New()
	orphan := category("Orphan", &missingParent)

	roots := buildCategoryTree([]tables.Category{orphan})

	if len(roots) != 1 || roots[0].Name != "Orphan" {
		t.Fatalf("orphaned category not promoted to root: %v", roots)
	}
}

func TestBuildCategoryTreeEmpty(t *testing.T) {
	roots := buildCategoryTree(nil)
	if roots == nil {
		t.Error("tree should be an empty slice, not nil")
	}
	if len(roots) != 0 {
		t.Errorf("got %d roots, want 0", len(roots))
	}
}

func TestBuildCategoryTreeLeavesHaveEmptyChildren(t *testing.T) {
	leaf := category("Leaf", nil)
	roots := buildCategoryTree([]tables.Category{leaf})

	if roots[0].Children == nil {
		t.Error("children should serialize as [], not null")
	}
}

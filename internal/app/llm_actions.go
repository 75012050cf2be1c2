package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain/graph"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/ports"
)

// Compile-time checks that the staged write types implement domain.Action.
var (
	_ domain.Action = (*upsertNodeAction)(nil)
	_ domain.Action = (*attachTagAction)(nil)
)

// upsertNodeAction merges one node through the repository and remembers the
// stored result. The extraction flow always stages new nodes (empty uid), so
// Rollback deletes the minted node.
type upsertNodeAction struct {
	repo    ports.GraphRepository
	label   string
	props   map[string]any
	display string

	uid    string
	stored *graph.Node
}

func (a *upsertNodeAction) Execute(ctx context.Context) error {
	node, err := a.repo.UpsertNode(ctx, a.label, "", a.props)
	if err != nil {
		return err
	}
	a.uid = node.UID
	a.stored = node
	return nil
}

func (a *upsertNodeAction) Rollback(ctx context.Context) error {
	if a.uid == "" {
		return nil
	}
	return a.repo.DeleteNode(ctx, a.label, a.uid)
}

func (a *upsertNodeAction) Description() string {
	return fmt.Sprintf("upsert %s %q", strings.ToLower(a.label), a.display)
}

// attachTagAction merges a tag node by name and connects the extracted
// person to it with a TAGGED relationship. Rollback removes the relationship
// and, when this action minted the tag node, the tag itself. Tags that
// already existed before the request are left in place.
type attachTagAction struct {
	repo      ports.GraphRepository
	person    *upsertNodeAction
	tag       graph.Tag
	createdBy string

	tagUID string
	minted bool
	stored *graph.Tag
}

func (a *attachTagAction) Execute(ctx context.Context) error {
	existing, err := a.repo.NodesByLabel(ctx, graph.LabelTag, map[string]any{"name": a.tag.Name}, 1)
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		a.tagUID = existing[0].UID
		stored := graph.TagFromNode(existing[0])
		a.stored = &stored
	} else {
		props := a.tag.Properties()
		if a.createdBy != "" {
			props["created_by"] = a.createdBy
		}
		node, err := a.repo.UpsertNode(ctx, graph.LabelTag, "", props)
		if err != nil {
			return err
		}
		a.tagUID = node.UID
		a.minted = true
		stored := graph.TagFromNode(*node)
		a.stored = &stored
	}

	relProps := make(map[string]any)
	if a.createdBy != "" {
		relProps["created_by"] = a.createdBy
	}
	if _, err := a.repo.CreateRelationship(ctx, a.person.uid, a.tagUID, graph.RelTagged, relProps); err != nil {
		// Commit rolls back completed actions only; partial work from a
		// failing Execute is undone here.
		if a.minted {
			_ = a.repo.DeleteNode(ctx, graph.LabelTag, a.tagUID)
		}
		return err
	}

	return nil
}

func (a *attachTagAction) Rollback(ctx context.Context) error {
	if err := a.repo.DeleteRelationship(ctx, a.person.uid, a.tagUID, graph.RelTagged); err != nil {
		return err
	}
	if a.minted {
		return a.repo.DeleteNode(ctx, graph.LabelTag, a.tagUID)
	}
	return nil
}

func (a *attachTagAction) Description() string {
	return fmt.Sprintf("attach tag %q", a.tag.Name)
}

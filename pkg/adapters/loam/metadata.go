package loam

import "github.com/aretw0/failtrace/internal/dto"

// NodeMetadata is the frontmatter of a node file.
//
//	---
//	id: check-deploy
//	kind: question
//	edges:
//	  - text: Yes, < 1hr ago
//	    to: sol-rollback
//	---
//	Recent deployment?
type NodeMetadata = dto.NodeMetadata

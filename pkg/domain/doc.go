/*
Package domain contains the core domain models of the failtrace engine.

It defines the static diagnostic graph (Nodes, Edges, Graph) and the mutable
trace Session that records the path a user walked through it. This package is
kept pure and free of I/O or persistence, following Hexagonal Architecture
principles.

# Key Entities

  - Node: a vertex of the graph. A Question branches through its Edges; a
    Solution or Terminal node ends the trace.
  - Edge: a labeled transition to another node.
  - Graph: an immutable, validated mapping from id to Node with a designated root.
  - Session: the ordered path of visited node ids, always starting at the root.
*/
package domain

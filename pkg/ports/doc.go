/*
Package ports defines the driven ports (interfaces) for the failtrace engine.

These interfaces decouple the core logic from external implementations, allowing
the engine to work with various graph sources and storage backends.

# Key Interfaces

  - GraphLoader: Responsible for loading raw Node definitions (e.g., from Memory, YAML or Loam).
  - KVStore: Flat key-value blob persistence used for sessions and the checklist.
*/
package ports

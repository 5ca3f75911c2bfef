/*
Package failtrace walks incident triage decision trees.

A graph is a static set of nodes. A question offers labeled answers leading to other
nodes. A solution ends the trace with a recommended action, and a terminal node ends it
with an escalation. A session records the path taken from the root. It can only grow
by one valid edge at a time, or be reset to the root.

# Graph sources

New picks the source from the directory it is given: the built-in playbook when the
directory is empty, a single graph.yaml document, or a directory of Markdown files
with frontmatter:

	---
	id: check-deploy
	kind: question
	edges:
	  - text: Yes, < 1hr ago
	    to: sol-rollback
	  - text: No changes made
	    to: check-cert
	---
	Recent deployment?

Graphs can also be built in code with package dsl and injected with WithLoader.

# Usage

	eng, err := failtrace.New("")
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	s := eng.Start(ctx, "incident-42")
	next, err := eng.Advance(ctx, s, "check-errors")
	if errors.Is(err, domain.ErrInvalidTransition) {
		// s is unchanged; offer its edges again
		next = s
	}
	fmt.Println(eng.CurrentNode(next).Prompt)

Sessions are plain values. Persist them with package session, which stores each one
as a JSON blob in any ports.KVStore (memory, file or Redis).
*/
package failtrace

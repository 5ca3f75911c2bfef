/*
Package dsl provides a fluent Go builder for diagnostic graphs.

It is an alternative to YAML or Markdown graph files when the graph is generated
in code or written inline in tests.

Example usage:

	b := dsl.New()

	b.Add("start").
		Question("Is the service responding?").
		Edge("No", "check-deploy").
		Edge("Slowly", "sol-scale")

	b.Add("check-deploy").
		Question("Recent deployment?").
		Edge("Yes", "sol-rollback").
		Edge("No", "escalate")

	b.Add("sol-rollback").Solution("Roll back", "Revert to the last known good artifact.")
	b.Add("sol-scale").Solution("Scale out", "Add replicas behind the load balancer.")
	b.Add("escalate").Terminal("Escalate to L2", "Page the on-call owner.")

	graph, err := b.Graph("start")
*/
package dsl

// Package playbook ships the built-in incident triage graph.
package playbook

import (
	"github.com/aretw0/failtrace/pkg/adapters/memory"
	"github.com/aretw0/failtrace/pkg/domain"
)

// Root is the entry node of the triage graph.
const Root = "start"

func ask(id, prompt string, edges ...domain.Edge) domain.Node {
	return domain.Node{ID: id, Kind: domain.KindQuestion, Prompt: prompt, Edges: edges}
}

func fix(id, prompt, detail string) domain.Node {
	return domain.Node{ID: id, Kind: domain.KindSolution, Prompt: prompt, Detail: detail}
}

func escalate(id, prompt, detail string) domain.Node {
	return domain.Node{ID: id, Kind: domain.KindTerminal, Prompt: prompt, Detail: detail}
}

func edge(label, target string) domain.Edge {
	return domain.Edge{Label: label, Target: target}
}

// Nodes returns a fresh copy of the triage graph definition.
func Nodes() []domain.Node {
	return []domain.Node{
		ask("start", "What is the primary symptom?",
			edge("High Error Rate (5xx)", "check-errors"),
			edge("High Latency / Timeout", "check-latency"),
			edge("Incorrect Output / Hallucination", "check-output"),
		),

		// Errors
		ask("check-errors", "Scope of errors?",
			edge("100% (Hard Down)", "check-deploy"),
			edge("Intermittent / Flaky", "check-deps"),
		),
		ask("check-deploy", "Recent deployment?",
			edge("Yes, < 1hr ago", "sol-rollback"),
			edge("No changes made", "check-cert"),
		),
		ask("check-cert", "Check Certificates/DNS",
			edge("Expired / NXDOMAIN", "sol-infra"),
			edge("Valid & Resolving", "sol-logs"),
		),
		ask("check-deps", "Dependency Failure?",
			edge("Yes (3rd Party)", "sol-circuit-breaker"),
			edge("No (Internal)", "sol-logs"),
		),

		// Latency
		ask("check-latency", "Database CPU status?",
			edge("Pegged (100%)", "sol-db-scale"),
			edge("Normal Load", "check-network"),
		),
		ask("check-network", "Geographic correlation?",
			edge("Specific Region", "sol-cdn"),
			edge("Global Issue", "sol-app-profile"),
		),

		// Output
		ask("check-output", "Component Type?",
			edge("LLM / AI Agent", "sol-prompt"),
			edge("Standard Logic", "sol-bad-data"),
		),

		fix("sol-rollback", "Initiate Rollback",
			"High correlation with deployment. Revert to last known good artifact (LKG) immediately."),
		fix("sol-infra", "Infrastructure Failure",
			"Renew SSL certificates or purge DNS cache. Check cloud provider status page for outages."),
		escalate("sol-logs", "Escalate to L2",
			"Deep log analysis required. Look for specific application exceptions or connection refusals."),
		fix("sol-db-scale", "Database Saturation",
			"Kill slow queries. Enable read-replicas. Consider vertical scaling if immediate relief needed."),
		fix("sol-cdn", "Edge/CDN Incident",
			"Reroute traffic from affected PoP. Check CDN provider status."),
		escalate("sol-app-profile", "Code Optimization",
			"Application profiling required. Suspected memory leak or thread pool starvation."),
		fix("sol-prompt", "Model/Prompt Drift",
			"Check for prompt injection. Adjust temperature settings or system prompt guardrails."),
		fix("sol-bad-data", "Data Corruption",
			"Check upstream data pipelines. Verify schema validation rules."),
		fix("sol-circuit-breaker", "Trip Circuit Breaker",
			"External dependency is failing. Disable calls to prevent cascading failure."),
	}
}

// Graph returns the validated triage graph.
func Graph() (*domain.Graph, error) {
	return domain.NewGraph(Root, Nodes()...)
}

// Loader exposes the triage graph through the GraphLoader port.
func Loader() (*memory.Loader, error) {
	return memory.NewFromNodes(Nodes()...)
}

// Package apispec describes the read API of the failure index as an OpenAPI 3 document.
// It is documentation for agents and RAG pipelines; nothing here serves HTTP.
package apispec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

const (
	Title     = "Awesome Tech Failures API"
	Version   = "1.0.0"
	ServerURL = "https://api.awesome-failures.dev/v1"
)

// Severities and Categories are the enum values of the FailureEntry schema.
var (
	Severities = []string{"Critical", "High", "Medium", "Low", "Info"}
	Categories = []string{"AI Slop", "Production Outage", "Security Incident", "Startup Failure", "UX Disaster", "Hardware Failure"}
	LinkTypes  = []string{"post-mortem", "news", "github", "social"}
)

func ref(name string, schema *openapi3.Schema) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("#/components/schemas/"+name, schema)
}

func enum(values []string) *openapi3.Schema {
	s := openapi3.NewStringSchema()
	for _, v := range values {
		s.Enum = append(s.Enum, v)
	}
	return s
}

func schemas() (failure, link, severity, category *openapi3.Schema) {
	severity = enum(Severities)
	category = enum(Categories)

	link = openapi3.NewObjectSchema().
		WithProperty("title", openapi3.NewStringSchema()).
		WithProperty("url", openapi3.NewStringSchema().WithFormat("uri")).
		WithProperty("type", enum(LinkTypes))
	link.Required = []string{"title", "url", "type"}

	failure = openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewStringSchema()).
		WithProperty("title", openapi3.NewStringSchema()).
		WithProperty("date", openapi3.NewStringSchema().WithFormat("date")).
		WithPropertyRef("category", ref("Category", category)).
		WithPropertyRef("severity", ref("Severity", severity)).
		WithProperty("companies", openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())).
		WithProperty("description", openapi3.NewStringSchema()).
		WithProperty("impact", openapi3.NewStringSchema()).
		WithProperty("tags", openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema()))
	links := openapi3.NewArraySchema()
	links.Items = ref("Link", link)
	failure.Properties["links"] = openapi3.NewSchemaRef("", links)
	failure.Required = []string{"id", "title", "date", "category", "severity", "companies", "description", "tags", "links"}
	return failure, link, severity, category
}

func jsonResponse(description string, schema *openapi3.SchemaRef) *openapi3.ResponseRef {
	resp := openapi3.NewResponse().WithDescription(description)
	if schema != nil {
		resp = resp.WithJSONSchemaRef(schema)
	}
	return &openapi3.ResponseRef{Value: resp}
}

// Build returns the OpenAPI document.
func Build() *openapi3.T {
	failure, link, severity, category := schemas()
	failureRef := ref("FailureEntry", failure)
	entries := openapi3.NewArraySchema()
	entries.Items = failureRef
	failureList := openapi3.NewSchemaRef("", entries)

	list := openapi3.NewOperation()
	list.OperationID = "listFailures"
	list.Summary = "List failure entries"
	list.Description = "Retrieve a paginated list of tech failures with optional filtering."
	list.AddParameter(openapi3.NewQueryParameter("category").
		WithSchema(openapi3.NewStringSchema()).
		WithDescription("Filter by category (e.g., 'AI Slop')"))
	list.AddParameter(openapi3.NewQueryParameter("tags").
		WithSchema(openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())).
		WithDescription("Filter by specific tags"))
	list.AddParameter(openapi3.NewQueryParameter("limit").
		WithSchema(openapi3.NewIntegerSchema().WithMin(1).WithDefault(20)).
		WithDescription("Max records to return (default: 20)"))
	list.Responses = openapi3.NewResponses(
		openapi3.WithStatus(200, jsonResponse("Matching failure entries", failureList)),
	)

	get := openapi3.NewOperation()
	get.OperationID = "getFailure"
	get.Summary = "Get failure details"
	get.Description = "Retrieve full post-mortem details and impact analysis for a specific ID."
	get.AddParameter(openapi3.NewPathParameter("id").
		WithSchema(openapi3.NewStringSchema()).
		WithDescription("Unique failure ID (e.g., 'crowdstrike-bsod')"))
	get.Responses = openapi3.NewResponses(
		openapi3.WithStatus(200, jsonResponse("The failure entry", failureRef)),
		openapi3.WithStatus(404, jsonResponse("No entry with this ID", nil)),
	)

	query := openapi3.NewObjectSchema().
		WithProperty("query", openapi3.NewStringSchema()).
		WithProperty("top_k", openapi3.NewIntegerSchema().WithMin(1))
	query.Required = []string{"query"}

	search := openapi3.NewOperation()
	search.OperationID = "searchSimilar"
	search.Summary = "Semantic Search"
	search.Description = "Find failures similar to a provided query vector or text description."
	search.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(query),
	}
	search.Responses = openapi3.NewResponses(
		openapi3.WithStatus(200, jsonResponse("Failures ranked by similarity", failureList)),
	)

	return &openapi3.T{
		OpenAPI: "3.0.0",
		Info: &openapi3.Info{
			Title:       Title,
			Version:     Version,
			Description: "Programmatic access to the failure index for AI agents and RAG pipelines.",
		},
		Servers: openapi3.Servers{{URL: ServerURL}},
		Paths: openapi3.NewPaths(
			openapi3.WithPath("/failures", &openapi3.PathItem{Get: list}),
			openapi3.WithPath("/failures/{id}", &openapi3.PathItem{Get: get}),
			openapi3.WithPath("/search/similarity", &openapi3.PathItem{Post: search}),
		),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				"FailureEntry": openapi3.NewSchemaRef("", failure),
				"Link":         openapi3.NewSchemaRef("", link),
				"Severity":     openapi3.NewSchemaRef("", severity),
				"Category":     openapi3.NewSchemaRef("", category),
			},
		},
	}
}

// Render encodes the document as "json" or "yaml".
func Render(doc *openapi3.T, format string) ([]byte, error) {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode openapi document: %w", err)
	}

	switch strings.ToLower(format) {
	case "", "json":
		return append(raw, '\n'), nil
	case "yaml", "yml":
		return toYAML(raw)
	default:
		return nil, fmt.Errorf("unsupported format %q (want json or yaml)", format)
	}
}

// toYAML re-encodes JSON as block-style YAML, keeping key order.
func toYAML(raw []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, err
	}
	clearStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}

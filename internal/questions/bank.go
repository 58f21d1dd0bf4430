// Package questions maps technology names to curated screening questions.
package questions

import (
	"fmt"
	"strings"
)

// Set pairs one technology with its screening questions. Generate returns
// sets in the same order the technologies were given.
type Set struct {
	Technology string   `json:"technology"`
	Questions  []string `json:"questions"`
}

type Bank struct {
	curated map[string][]string
}

func NewBank() *Bank {
	return &Bank{curated: curatedQuestions}
}

// Generate looks each technology up by its lower-cased name. Unknown
// technologies get the generic fallback set with the name interpolated.
// Pure and deterministic; no external calls.
func (b *Bank) Generate(techStack []string) []Set {
	sets := make([]Set, 0, len(techStack))
	for _, tech := range techStack {
		qs, ok := b.curated[strings.ToLower(tech)]
		if !ok {
			qs = genericQuestions(tech)
		}
		sets = append(sets, Set{Technology: tech, Questions: qs})
	}
	return sets
}

func genericQuestions(tech string) []string {
	return []string{
		fmt.Sprintf("Describe a challenging problem you solved using %s.", tech),
		fmt.Sprintf("What do you consider best practices when working with %s?", tech),
		fmt.Sprintf("How do you keep your %s skills up to date?", tech),
		fmt.Sprintf("What are the limitations of %s, and how do you work around them?", tech),
	}
}

var curatedQuestions = map[string][]string{
	"python": {
		"What is the difference between a list and a tuple in Python, and when would you choose one over the other?",
		"Explain how Python's GIL affects multi-threaded programs.",
		"How do decorators work, and where have you used them?",
		"What happens when you use a mutable default argument in a function definition?",
	},
	"go": {
		"How do goroutines differ from OS threads?",
		"Explain how channels can be used to coordinate concurrent work.",
		"What does 'accept interfaces, return structs' mean in practice?",
		"How do you handle and wrap errors across package boundaries?",
		"When would you reach for sync.Mutex instead of a channel?",
	},
	"golang": {
		"How do goroutines differ from OS threads?",
		"Explain how channels can be used to coordinate concurrent work.",
		"What does 'accept interfaces, return structs' mean in practice?",
		"How do you handle and wrap errors across package boundaries?",
		"When would you reach for sync.Mutex instead of a channel?",
	},
	"javascript": {
		"Explain the event loop and how it handles asynchronous callbacks.",
		"What is a closure, and what is a common pitfall when using closures in loops?",
		"What is the difference between == and ===?",
		"How do Promises differ from async/await in error handling?",
	},
	"typescript": {
		"What problems does TypeScript's structural typing solve, and where does it surprise people?",
		"Explain the difference between interface and type aliases.",
		"How do generics improve the safety of a utility function you have written?",
		"What does the unknown type give you that any does not?",
	},
	"java": {
		"Explain the difference between an interface and an abstract class.",
		"How does the JVM garbage collector affect latency-sensitive services?",
		"What is the difference between checked and unchecked exceptions?",
		"How does the Stream API change the way you write collection-processing code?",
	},
	"react": {
		"What problem do hooks solve compared to class components?",
		"Explain how the virtual DOM reconciliation works at a high level.",
		"When does a component re-render, and how do you prevent unnecessary renders?",
		"How do you decide between local state, context, and an external store?",
	},
	"angular": {
		"Explain Angular's dependency injection and why it matters for testing.",
		"What is the difference between reactive and template-driven forms?",
		"How does change detection work, and when would you use OnPush?",
	},
	"vue": {
		"How does Vue's reactivity system track dependencies?",
		"What is the difference between computed properties and watchers?",
		"How do you structure shared state in a mid-sized Vue application?",
	},
	"node.js": {
		"How does Node.js handle concurrent I/O on a single thread?",
		"What is backpressure in streams, and how do you deal with it?",
		"How do you avoid blocking the event loop in a CPU-heavy endpoint?",
		"Describe your approach to structuring an Express or Fastify service.",
	},
	"node": {
		"How does Node.js handle concurrent I/O on a single thread?",
		"What is backpressure in streams, and how do you deal with it?",
		"How do you avoid blocking the event loop in a CPU-heavy endpoint?",
		"Describe your approach to structuring an Express or Fastify service.",
	},
	"django": {
		"Explain the request/response cycle in Django, including middleware.",
		"How does the ORM generate queries, and how do you spot an N+1 problem?",
		"What is the difference between select_related and prefetch_related?",
	},
	"flask": {
		"How does Flask's application context differ from the request context?",
		"How do blueprints help structure a larger Flask application?",
		"What is your approach to input validation in Flask endpoints?",
	},
	"sql": {
		"What is the difference between an inner join and a left join?",
		"How do indexes speed up queries, and what is their cost?",
		"Explain a situation where you had to rewrite a slow query.",
		"What are transaction isolation levels, and why do they matter?",
	},
	"postgresql": {
		"What PostgreSQL features have you used beyond standard SQL?",
		"How do you investigate a slow query in PostgreSQL?",
		"Explain MVCC and its consequence for long-running transactions.",
		"When would you use a JSONB column instead of a normalized table?",
	},
	"mysql": {
		"How do InnoDB row locks behave under concurrent updates?",
		"What is the difference between a clustered and a secondary index in MySQL?",
		"How do you approach schema migrations on a large MySQL table?",
	},
	"mongodb": {
		"How do you design a document schema for a one-to-many relationship?",
		"What trade-offs come with embedding versus referencing documents?",
		"How do compound indexes interact with query shape in MongoDB?",
	},
	"redis": {
		"Which Redis data structures have you used, and for what?",
		"How do you choose an eviction policy for a cache?",
		"What are the risks of using Redis as a primary data store?",
	},
	"docker": {
		"What is the difference between an image and a container?",
		"How do multi-stage builds reduce image size?",
		"How do you persist data produced by a container?",
		"What does it mean for a container to be ephemeral, and how does that shape your app design?",
	},
	"kubernetes": {
		"Explain the relationship between Deployments, ReplicaSets and Pods.",
		"How do liveness and readiness probes differ?",
		"How does a Service route traffic to Pods?",
		"Describe a production issue you debugged on Kubernetes.",
	},
	"aws": {
		"Which AWS services have you used in production, and for what?",
		"How do you structure IAM so services get least-privilege access?",
		"Compare running a workload on EC2, ECS and Lambda.",
	},
	"git": {
		"Explain the difference between merge and rebase, and when you use each.",
		"How do you undo a commit that was already pushed?",
		"Describe your team's branching workflow and its trade-offs.",
	},
	"machine learning": {
		"How do you detect and address overfitting?",
		"Explain the bias-variance trade-off in your own words.",
		"How do you decide which evaluation metric fits a problem?",
		"Walk through how you productionized a model.",
	},
}

package extract

// knownTechnologies is the fixed detection vocabulary. Detection preserves
// this order, not the order of first occurrence in the input, so results are
// stable across resumes that mention the same stack in different order.
var knownTechnologies = []string{
	"Python", "JavaScript", "TypeScript", "C#", "Node.js", "React", "Next.js", "Vue.js",
	"TensorFlow", "PyTorch", "LangChain", "Hugging Face", "AWS", "S3", "DynamoDB", "Docker",
	"Kubernetes", "SQL", "Postgres", "MongoDB", "Redis", "GraphQL", "FastAPI", "Django",
	"Flask", "Angular", "Vue", "Svelte", "Go", "Rust", "Java", "Kotlin", "Swift",
}

// roleKeywords are role-title words matched as whole words, case-insensitive.
var roleKeywords = []string{
	"desenvolvedor", "desenvolvedora", "analista", "engenheiro",
	"cientista", "gerente", "coordenador",
}

// educationKeywords mark a line as education-related when the year-anchored
// regex finds nothing.
var educationKeywords = []string{
	"universidade", "faculdade", "bacharel", "graduação",
}

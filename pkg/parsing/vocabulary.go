package parsing

// skillVocabulary is the fixed reference list for heuristic skill detection:
// common languages, frameworks, tools and methodologies. Match order follows
// list order, so more specific names come before their substrings
// (e.g. TypeScript before Java would still match both — ordering only
// decides the order of the returned matches).
var skillVocabulary = []string{
	// languages
	"JavaScript", "TypeScript", "Python", "Java", "Golang", "Ruby",
	"Rust", "Kotlin", "Swift", "Scala", "PHP", "C++", "C#",
	// frontend
	"React", "Angular", "Vue", "Next.js", "Svelte", "Redux",
	"HTML", "CSS", "Tailwind", "Webpack",
	// backend / frameworks
	"Node.js", "Express", "Django", "Flask", "FastAPI", "Spring",
	"Rails", ".NET", "GraphQL", "REST", "gRPC",
	// data
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch",
	"Kafka", "RabbitMQ", "SQL", "Spark", "Snowflake",
	// infra / cloud
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform",
	"Ansible", "Jenkins", "CircleCI", "GitHub Actions", "CI/CD",
	"Linux", "Nginx", "Serverless", "Lambda",
	// practices & tools
	"Git", "Agile", "Scrum", "Kanban", "TDD", "Microservices",
	"Machine Learning", "Data Analysis", "ETL", "A/B Testing",
	"Leadership", "Mentoring", "Project Management",
}

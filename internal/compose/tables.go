package compose

// Markdown section headers of the composed resume. Exported so callers can
// check for a section's presence without duplicating the literal.
const (
	SectionSummary         = "## 💼 Resumo Profissional"
	SectionExperience      = "## 🚀 Experiência Profissional"
	SectionProjects        = "## 🔧 Projetos Relevantes"
	SectionSkills          = "## 🛠️ Habilidades Técnicas"
	SectionEducation       = "## 🎓 Formação"
	SectionCertifications  = "## 📜 Certificações"
	SectionDifferentiators = "## ⭐ Diferenciais Competitivos"
)

// defaultTitle is used when the job description matches no role trigger or
// is absent.
const defaultTitle = "Desenvolvedor/Engenheiro de IA"

// roleTitleTriggers maps job-description keywords to resume titles.
// Evaluation follows slice order; first match wins.
var roleTitleTriggers = []struct {
	keyword string
	title   string
}{
	{"fullstack", "Desenvolvedor Full Stack"},
	{"backend", "Desenvolvedor Backend"},
	{"frontend", "Desenvolvedor Frontend"},
	{"data scientist", "Cientista de Dados"},
	{"devops", "Engenheiro DevOps"},
}

// summarySentences are fixed summary additions gated by keyword presence in
// the resume text.
var summarySentences = []struct {
	keyword  string
	sentence string
}{
	{"nlp", "Especialista em NLP e processamento de linguagem natural."},
	{"pipeline", "Experiência comprovada em construção de pipelines de ML e integração de modelos."},
}

// contextBullets are experience bullets gated by keyword presence in the
// resume text.
var contextBullets = []struct {
	keyword string
	bullet  string
}{
	{"pipeline", "- Desenvolvimento e otimização de pipelines de Machine Learning"},
	{"api", "- Construção de APIs escaláveis e integração de sistemas"},
	{"aws", "- Deploy e gerenciamento de soluções em cloud (AWS)"},
}

// defaultExperienceBullets are used when no context bullet matched.
var defaultExperienceBullets = []string{
	"- Desenvolvimento de soluções tecnológicas inovadoras",
	"- Colaboração em projetos multidisciplinares",
}

// placeholderExperience fills the experience section when no experience
// lines were extracted. The section is never rendered empty.
var placeholderExperience = []string{
	"### Engenheiro de Machine Learning",
	"**TechCompany** | 2023 - Presente",
	"",
	"- Desenvolvimento de soluções de IA e machine learning",
	"- Construção de pipelines de dados e modelos preditivos",
	"- Integração de LLMs em produtos e sistemas",
	"",
	"### Desenvolvedor Full Stack",
	"**StartupTech** | 2021 - 2023",
	"",
	"- Desenvolvimento de aplicações web e APIs",
	"- Implementação de soluções de backend e frontend",
	"- Integração com serviços de nuvem e databases",
	"",
}

// defaultProjects fills the projects section when none were extracted.
var defaultProjects = []struct {
	name        string
	description string
}{
	{
		"Sistema de Automação com IA",
		"Pipeline completo de processamento de dados com modelos de machine learning para classificação e predição.",
	},
	{
		"API de Machine Learning",
		"Desenvolvimento de API REST escalável para servir modelos ML em produção com monitoramento.",
	},
	{
		"Plataforma de NLP",
		"Sistema de processamento de linguagem natural para análise de sentimentos e extração de entidades.",
	},
}

// skillCategories partitions prioritized technologies into labeled groups.
// Only non-empty groups are rendered, in this order.
var skillCategories = []struct {
	label   string
	members []string
}{
	{"Linguagens", []string{"Python", "JavaScript", "TypeScript", "C#", "Java", "Go", "Rust"}},
	{"Frameworks", []string{"React", "Next.js", "Vue.js", "Node.js", "FastAPI", "Django", "Flask"}},
	{"IA & ML", []string{"TensorFlow", "PyTorch", "LangChain", "Hugging Face"}},
	{"Cloud", []string{"AWS", "S3", "DynamoDB", "Docker", "Kubernetes"}},
	{"Databases", []string{"SQL", "MongoDB", "Postgres", "Redis"}},
}

// defaultSkillLines are rendered when no technology was found at all.
var defaultSkillLines = []string{
	"**Linguagens:** Python, JavaScript, TypeScript",
	"**IA & ML:** TensorFlow, PyTorch, LangChain",
	"**Cloud:** AWS, Docker, Kubernetes",
	"**Databases:** SQL, MongoDB, PostgreSQL",
}

// techDifferentiators maps job-description keywords to differentiator
// sentences. A sentence is emitted when the keyword appears in the job
// description and some prioritized technology matches the keyword.
// Iteration order is fixed.
var techDifferentiators = []struct {
	keyword  string
	sentence string
}{
	{"python", "✓ **Expertise em Python** - linguagem principal para desenvolvimento"},
	{"javascript", "✓ **JavaScript Avançado** - desenvolvimento web moderno"},
	{"react", "✓ **React Specialist** - interfaces de usuário avançadas"},
	{"aws", "✓ **Cloud Computing** - experiência AWS para sistemas escaláveis"},
	{"docker", "✓ **Containerização** - deploy e orquestração com Docker/Kubernetes"},
	{"api", "✓ **APIs Escaláveis** - desenvolvimento de serviços robustos"},
}

// genericDifferentiators are emitted when no technology differentiator
// matched.
var genericDifferentiators = []string{
	"✓ **Experiência técnica alinhada** com os requisitos da posição",
	"✓ **Capacidade comprovada** de entrega em projetos complexos",
}

// maxDifferentiators caps the differentiators section.
const maxDifferentiators = 4

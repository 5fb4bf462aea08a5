// Package content holds the static portfolio data served by the
// read-only API endpoints. The site has no database; edits ship with
// a deploy.
package content

// Project is a portfolio project entry
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"image_url"`
	Link        string   `json:"link"`
}

// Skill is a single technology with a proficiency level
type Skill struct {
	Name  string `json:"name"`
	Level string `json:"level"` // primary, secondary, familiar
}

// SkillCategory groups skills for display
type SkillCategory struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Skills []Skill `json:"skills"`
}

// Experience is one entry of the work/education timeline, most recent first
type Experience struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"` // work or education
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Location     string   `json:"location"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Bullets      []string `json:"bullets"`
	TechStack    []string `json:"tech_stack,omitempty"`
}

// Projects returns the project list
func Projects() []Project {
	return projects
}

// Skills returns the skill categories
func Skills() []SkillCategory {
	return skillCategories
}

// Experiences returns the experience timeline
func Experiences() []Experience {
	return experiences
}

var projects = []Project{
	{
		Title:       "Job Application Tracker",
		Description: "A full-stack application to simplify job management with secure uploads, real-time visualizations, and location-based insights.",
		Tags:        []string{"JavaScript", "Bootstrap", "MongoDB", "NodeJS", "Cloudinary", "Leaflet", "Git"},
		ImageURL:    "/images/jobtracker.jpeg",
		Link:        "https://github.com/Ajinkyabhamre/Job-Application-Tracker",
	},
	{
		Title:       "Research Collaboration Platform",
		Description: "A web-based platform enabling professors, students, and researchers to create, manage, and collaborate on research projects seamlessly.",
		Tags:        []string{"ReactJS", "GraphQL", "MongoDB", "Redis", "Firebase Authentication", "Git"},
		ImageURL:    "/images/research.png",
		Link:        "https://github.com/Ajinkyabhamre/research-collaboration-platform",
	},
	{
		Title:       "Presurgical Epilepsy Detection Platform",
		Description: "A web tool empowering users to identify seizure-affected brain areas through 3D visualization and ML-driven insights for improved surgical outcomes.",
		Tags:        []string{"React", "Node", "Python", "MongoDB", "Jest"},
		ImageURL:    "/images/epicarehub.jpeg",
		Link:        "https://github.com/Ajinkyabhamre/SSWCS-555-EpiCareHub",
	},
}

var skillCategories = []SkillCategory{
	{
		ID:    "languages",
		Title: "Languages",
		Skills: []Skill{
			{Name: "JavaScript", Level: "primary"},
			{Name: "TypeScript", Level: "primary"},
			{Name: "Python", Level: "primary"},
			{Name: "Java", Level: "primary"},
			{Name: "Go", Level: "secondary"},
			{Name: "Bash", Level: "secondary"},
			{Name: "C/C++", Level: "familiar"},
		},
	},
	{
		ID:    "frontend",
		Title: "Frontend",
		Skills: []Skill{
			{Name: "React", Level: "primary"},
			{Name: "Next.js", Level: "primary"},
			{Name: "Tailwind", Level: "primary"},
			{Name: "HTML", Level: "secondary"},
			{Name: "CSS", Level: "secondary"},
			{Name: "Redux", Level: "secondary"},
		},
	},
	{
		ID:    "backend",
		Title: "Backend & APIs",
		Skills: []Skill{
			{Name: "Node.js", Level: "primary"},
			{Name: "Express", Level: "primary"},
			{Name: "GraphQL", Level: "primary"},
			{Name: "REST APIs", Level: "secondary"},
			{Name: "WebSockets", Level: "secondary"},
			{Name: "gRPC", Level: "familiar"},
		},
	},
	{
		ID:    "infra",
		Title: "Infrastructure & Data",
		Skills: []Skill{
			{Name: "MongoDB", Level: "primary"},
			{Name: "PostgreSQL", Level: "secondary"},
			{Name: "AWS", Level: "secondary"},
			{Name: "Docker", Level: "secondary"},
			{Name: "Jest", Level: "secondary"},
		},
	},
}

var experiences = []Experience{
	{
		ID:           "uplifty",
		Type:         "work",
		Title:        "Software Engineer Intern",
		Organization: "Uplifty AI",
		Location:     "New York, NY",
		StartDate:    "Aug 2025",
		EndDate:      "Present",
		Bullets: []string{
			"Built cross-platform UI components with React Native and TypeScript, improving load time and feature usability by 25%.",
			"Automated mobile releases through GitHub Actions, cutting deployment effort 40% and improving release reliability.",
		},
		TechStack: []string{"React Native", "TypeScript", "GitHub Actions"},
	},
	{
		ID:           "stevens-ms",
		Type:         "education",
		Title:        "MS in Software Engineering",
		Organization: "Stevens Institute of Technology",
		Location:     "Hoboken, NJ",
		StartDate:    "2023",
		EndDate:      "Present",
		Bullets: []string{
			"Pursuing a Master's degree in Software Engineering, gaining expertise in full-stack development, cloud technologies, and agile methodologies.",
		},
	},
	{
		ID:           "stevens-it",
		Type:         "work",
		Title:        "Graduate IT Assistant",
		Organization: "Stevens Institute of Technology",
		Location:     "Hoboken, NJ",
		StartDate:    "Aug 2024",
		EndDate:      "May 2025",
		Bullets: []string{
			"Provided technical support by diagnosing and resolving issues with Audio/Visual equipment, networking, and LAN/TCP/IP systems.",
			"Ensured seamless operations across campus facilities through proactive maintenance and troubleshooting.",
		},
		TechStack: []string{"A/V Equipment", "Networking", "LAN/TCP/IP"},
	},
	{
		ID:           "propix",
		Type:         "work",
		Title:        "Software Engineer",
		Organization: "Propix Technologies",
		Location:     "Pune, India",
		StartDate:    "Aug 2020",
		EndDate:      "Jul 2023",
		Bullets: []string{
			"Developed and maintained scalable web applications serving enterprise clients.",
			"Mastered the full software development lifecycle from requirements to deployment.",
			"Collaborated with cross-functional teams in an Agile environment.",
		},
	},
	{
		ID:           "nmims",
		Type:         "education",
		Title:        "BTech in Information Technology",
		Organization: "NMIMS University",
		Location:     "Mumbai, India",
		StartDate:    "2016",
		EndDate:      "2020",
		Bullets: []string{
			"Graduated with a Bachelor's degree in Information Technology, building a strong foundation in programming, data structures, and software development.",
		},
	},
}

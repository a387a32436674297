package prep

// RoundMapping predicts the interview round sequence for a company
// size, adding conditional rounds when the detected skills warrant
// them. Unknown sizes use the startup template.
func RoundMapping(companySize string, skills Skills) []Round {
	switch companySize {
	case SizeEnterprise:
		return enterpriseRounds(skills)
	case SizeMidSize:
		return midSizeRounds(skills)
	default:
		return startupRounds(skills)
	}
}

func enterpriseRounds(skills Skills) []Round {
	rounds := []Round{
		{
			RoundNumber:  1,
			Title:        "Online Assessment",
			Focus:        []string{"Aptitude", "Logical Reasoning", "Basic Coding"},
			Description:  "Standardized screening test to filter candidates",
			WhyItMatters: "Enterprise companies receive thousands of applications. This round filters candidates based on basic aptitude and problem-solving abilities before investing interviewer time.",
			Duration:     "60-90 mins",
			Difficulty:   "Medium",
			Tips:         []string{"Practice timed aptitude questions", "Focus on accuracy over speed", "Review basic DSA patterns"},
		},
		{
			RoundNumber:  2,
			Title:        "Technical Round 1: DSA",
			Focus:        []string{"Data Structures", "Algorithms", "Problem Solving"},
			Description:  "Deep dive into DSA with 2-3 coding problems",
			WhyItMatters: "Enterprise products handle massive scale. Strong DSA skills are essential for writing efficient, scalable code that performs under load.",
			Duration:     "45-60 mins",
			Difficulty:   "Medium-Hard",
			Tips:         []string{"Master arrays, strings, trees, graphs", "Practice explaining your approach", "Optimize for time and space complexity"},
		},
	}

	if skills.hasAny("coreCS", "data") {
		rounds = append(rounds, Round{
			RoundNumber:  len(rounds) + 1,
			Title:        "Technical Round 2: Core CS",
			Focus:        []string{"DBMS", "Operating Systems", "Computer Networks", "OOP"},
			Description:  "Theoretical and practical CS fundamentals",
			WhyItMatters: "Enterprise systems require deep understanding of computer science fundamentals for designing robust, maintainable systems.",
			Duration:     "45-60 mins",
			Difficulty:   "Medium",
			Tips:         []string{"Review OS concepts (processes, memory, scheduling)", "Practice SQL queries", "Understand normalization and indexing"},
		})
	}
	if skills.hasAny("cloud", "web") || skills.hasAny("coreCS") {
		rounds = append(rounds, Round{
			RoundNumber:  len(rounds) + 1,
			Title:        "Technical Round 3: System Design",
			Focus:        []string{"High-Level Design", "Scalability", "Architecture"},
			Description:  "Design scalable distributed systems",
			WhyItMatters: "Enterprise engineers build systems serving millions. This round tests your ability to design scalable, reliable, and maintainable architectures.",
			Duration:     "60 mins",
			Difficulty:   "Hard",
			Tips:         []string{"Learn design patterns", "Understand microservices", "Practice designing URL shortener, chat systems"},
		})
	}

	rounds = append(rounds, Round{
		RoundNumber:  len(rounds) + 1,
		Title:        "Technical Round: Projects & Experience",
		Focus:        []string{"Past Projects", "Technical Decisions", "Problem Solving"},
		Description:  "Deep dive into your past work and technical decisions",
		WhyItMatters: "Past performance predicts future success. This round validates your practical experience and ability to apply skills in real-world scenarios.",
		Duration:     "45-60 mins",
		Difficulty:   "Medium",
		Tips:         []string{"Prepare 2-3 strong projects", "Explain your specific contributions", "Discuss challenges and learnings"},
	})
	rounds = append(rounds, Round{
		RoundNumber:  len(rounds) + 1,
		Title:        "HR / Behavioral Round",
		Focus:        []string{"Culture Fit", "Communication", "Career Goals"},
		Description:  "Behavioral questions and company culture alignment",
		WhyItMatters: "Enterprise companies invest heavily in employee development. They look for candidates who align with company values and show long-term potential.",
		Duration:     "30-45 mins",
		Difficulty:   "Low",
		Tips:         []string{"Prepare STAR format answers", "Research company values", "Prepare thoughtful questions to ask"},
	})
	return rounds
}

func midSizeRounds(skills Skills) []Round {
	rounds := []Round{
		{
			RoundNumber:  1,
			Title:        "Online Coding Test",
			Focus:        []string{"DSA", "Problem Solving", "Code Quality"},
			Description:  "2-3 coding problems with varying difficulty",
			WhyItMatters: "Mid-size companies need engineers who can write production-ready code. This round tests both problem-solving and code quality.",
			Duration:     "60-90 mins",
			Difficulty:   "Medium",
			Tips:         []string{"Write clean, readable code", "Handle edge cases", "Add comments where necessary"},
		},
		{
			RoundNumber:  2,
			Title:        "Technical Round: DSA + Practical",
			Focus:        []string{"Data Structures", "Algorithms", "Implementation"},
			Description:  "Live coding with discussion on approach",
			WhyItMatters: "Mid-size companies balance theory with practice. This round tests your ability to solve problems and explain your thought process clearly.",
			Duration:     "60 mins",
			Difficulty:   "Medium",
			Tips:         []string{"Think aloud while solving", "Discuss trade-offs", "Test your code with examples"},
		},
	}

	if skills.hasAny("web", "languages", "cloud") {
		rounds = append(rounds, Round{
			RoundNumber:  len(rounds) + 1,
			Title:        "Technical Round: Stack Deep Dive",
			Focus:        []string{"Framework Knowledge", "Best Practices", "Real-world Scenarios"},
			Description:  "Questions specific to your tech stack",
			WhyItMatters: "Mid-size companies often need immediate contributors. This round validates your expertise in the specific technologies they use.",
			Duration:     "45-60 mins",
			Difficulty:   "Medium",
			Tips:         []string{"Review framework-specific concepts", "Know best practices", "Be ready to discuss trade-offs"},
		})
	}

	rounds = append(rounds, Round{
		RoundNumber:  len(rounds) + 1,
		Title:        "System Design (Basics)",
		Focus:        []string{"API Design", "Database Schema", "Basic Architecture"},
		Description:  "Design a simple system or API",
		WhyItMatters: "Even mid-size companies need engineers who understand system basics. This round tests your ability to design simple, working systems.",
		Duration:     "45 mins",
		Difficulty:   "Medium",
		Tips:         []string{"Start with requirements", "Think about scalability", "Discuss trade-offs"},
	})
	rounds = append(rounds, Round{
		RoundNumber:  len(rounds) + 1,
		Title:        "Project Discussion",
		Focus:        []string{"Past Work", "Technical Decisions", "Collaboration"},
		Description:  "Deep dive into your projects and experience",
		WhyItMatters: "Your past projects demonstrate your ability to deliver. This round validates your practical experience and teamwork skills.",
		Duration:     "45 mins",
		Difficulty:   "Medium",
		Tips:         []string{"Choose projects relevant to the role", "Explain technical decisions", "Highlight collaboration"},
	})
	rounds = append(rounds, Round{
		RoundNumber:  len(rounds) + 1,
		Title:        "Culture Fit / HR",
		Focus:        []string{"Values Alignment", "Growth Mindset", "Team Fit"},
		Description:  "Behavioral questions and culture alignment",
		WhyItMatters: "Mid-size companies have strong cultures. They look for candidates who will thrive in their environment and grow with the company.",
		Duration:     "30-45 mins",
		Difficulty:   "Low",
		Tips:         []string{"Understand company culture", "Show enthusiasm", "Ask about growth opportunities"},
	})
	return rounds
}

func startupRounds(skills Skills) []Round {
	rounds := []Round{
		{
			RoundNumber:  1,
			Title:        "Practical Coding",
			Focus:        []string{"Real-world Problems", "Quick Implementation", "Code Quality"},
			Description:  "Solve practical problems similar to real tasks",
			WhyItMatters: "Startups need engineers who can ship code quickly. This round tests your ability to solve real problems efficiently and write production-ready code.",
			Duration:     "60-90 mins",
			Difficulty:   "Medium",
			Tips:         []string{"Focus on working solution first", "Then optimize if time permits", "Write clean, maintainable code"},
		},
	}

	if skills.hasAny("web", "languages", "data", "cloud") {
		rounds = append(rounds, Round{
			RoundNumber:  len(rounds) + 1,
			Title:        "Stack Deep Dive",
			Focus:        []string{"Tech Stack Depth", "Architecture Choices", "Hands-on Knowledge"},
			Description:  "Deep discussion of the stack you will work with",
			WhyItMatters: "Startup engineers own features end to end. This round checks whether you can contribute to their stack from day one.",
			Duration:     "45-60 mins",
			Difficulty:   "Medium",
			Tips:         []string{"Know your primary stack deeply", "Prepare real examples from projects", "Be honest about gaps"},
		})
	}

	rounds = append(rounds, Round{
		RoundNumber:  len(rounds) + 1,
		Title:        "Founder / Team Fit",
		Focus:        []string{"Ownership", "Learning Speed", "Culture Fit"},
		Description:  "Conversation with founders or senior engineers",
		WhyItMatters: "Small teams amplify every hire. Startups screen hard for ownership, adaptability and the ability to work without structure.",
		Duration:     "30-45 mins",
		Difficulty:   "Low",
		Tips:         []string{"Show genuine interest in the product", "Demonstrate ownership with examples", "Ask sharp questions about the roadmap"},
	})
	return rounds
}

package prep

// Checklist builds the round-wise preparation checklist: four fixed
// rounds whose items grow with the detected skills.
func Checklist(skills Skills) []ChecklistRound {
	round1 := []string{
		"Practice quantitative aptitude problems",
		"Review logical reasoning concepts",
		"Solve verbal ability questions",
		"Complete 2 full-length mock tests",
		"Time management practice (30 min tests)",
		"Review basic grammar and comprehension",
		"Practice data interpretation",
		"Work on puzzle-solving speed",
	}

	round2 := []string{
		"Review Arrays and Strings (basic to advanced)",
		"Practice Linked List operations",
		"Master Stack and Queue implementations",
		"Study Tree and Graph traversals",
		"Understand Sorting and Searching algorithms",
		"Practice Dynamic Programming patterns",
		"Review OOP concepts and principles",
		"Study DBMS fundamentals and SQL queries",
	}
	if skills.has("coreCS", "OS") {
		round2 = append(round2, "Review Operating System concepts (processes, memory, scheduling)")
	}
	if skills.has("coreCS", "Networks") {
		round2 = append(round2, "Study Computer Networks (OSI model, TCP/IP, HTTP)")
	}

	round3 := []string{
		"Prepare project explanations (architecture, challenges, learnings)",
		"Review your strongest project in detail",
		"Practice explaining code from your GitHub",
		"Prepare answers for \"Tell me about yourself\"",
		"Research company tech stack alignment",
	}
	if skills.hasAny("web", "languages") {
		round3 = append(round3,
			"Review framework-specific concepts and best practices",
			"Prepare for live coding session",
		)
	}
	if skills.has("web", "React") {
		round3 = append(round3,
			"Study React hooks, state management, and component lifecycle",
			"Practice React optimization techniques",
		)
	}
	if skills.has("web", "Node.js") {
		round3 = append(round3, "Review Node.js event loop, async programming, and Express.js")
	}
	if skills.hasAny("data") {
		round3 = append(round3,
			"Practice database design and query optimization",
			"Review indexing, normalization, and transactions",
		)
	}
	if skills.has("data", "SQL") {
		round3 = append(round3, "Master complex SQL queries (joins, subqueries, window functions)")
	}
	if skills.hasAny("cloud") {
		round3 = append(round3,
			"Understand cloud services and deployment strategies",
			"Review CI/CD pipelines and containerization",
		)
	}
	if skills.hasAny("testing") {
		round3 = append(round3, "Study testing methodologies and write test cases")
	}

	round4 := []string{
		"Prepare STAR format answers for behavioral questions",
		"Research company culture, values, and recent news",
		"Prepare questions to ask the interviewer",
		"Practice salary negotiation talking points",
		"Review your resume thoroughly",
		"Prepare \"Why this company?\" answer",
		"Prepare \"Where do you see yourself in 5 years?\"",
		"Practice confidence and communication skills",
	}

	return []ChecklistRound{
		{RoundTitle: "Round 1: Aptitude / Basics", Items: round1},
		{RoundTitle: "Round 2: DSA + Core CS", Items: round2},
		{RoundTitle: "Round 3: Technical Interview", Items: round3},
		{RoundTitle: "Round 4: Managerial / HR", Items: round4},
	}
}

package prep

// SevenDayPlan builds the fixed 7-day preparation plan, appending
// skill-specific tasks where the detected skills warrant them. The
// result always has exactly 7 days numbered 1..7.
func SevenDayPlan(skills Skills) []PlanDay {
	plan := DefaultPlan()

	if skills.has("web", "React") {
		plan[4].Tasks = append(plan[4].Tasks, "Review React concepts: hooks, context, performance optimization")
		plan[5].Tasks = append(plan[5].Tasks, "Practice React-specific interview questions")
	}
	if skills.has("web", "Node.js") {
		plan[4].Tasks = append(plan[4].Tasks, "Review Node.js and Express.js fundamentals")
		plan[5].Tasks = append(plan[5].Tasks, "Practice backend architecture questions")
	}
	if skills.has("data", "SQL") {
		plan[1].Tasks = append(plan[1].Tasks, "Advanced SQL: window functions, CTEs, query optimization")
		plan[4].Tasks = append(plan[4].Tasks, "Database design practice for your projects")
	}
	if skills.hasAny("cloud") {
		plan[4].Tasks = append(plan[4].Tasks, "Review cloud services and deployment strategies")
		plan[5].Tasks = append(plan[5].Tasks, "Practice DevOps and CI/CD questions")
	}
	if skills.hasAny("testing") {
		plan[4].Tasks = append(plan[4].Tasks, "Review testing strategies and frameworks")
		plan[5].Tasks = append(plan[5].Tasks, "Practice writing test cases for your code")
	}
	if skills.has("languages", "Java") {
		plan[2].Tasks = append(plan[2].Tasks, "Review Java-specific: Collections, Multithreading, JVM")
	}
	if skills.has("languages", "Python") {
		plan[2].Tasks = append(plan[2].Tasks, "Review Python-specific: List comprehensions, decorators, generators")
	}

	return plan
}

// DefaultPlan returns a fresh copy of the unadorned 7-day template.
// Normalization uses it to backfill missing days.
func DefaultPlan() []PlanDay {
	return []PlanDay{
		{
			Day:   1,
			Focus: "Basics + Core CS",
			Tasks: []string{
				"Review fundamental data structures (Arrays, Linked Lists)",
				"Study OOP concepts and principles",
				"Practice 5 easy coding problems",
				"Review time and space complexity analysis",
			},
		},
		{
			Day:   2,
			Focus: "Core CS Continued",
			Tasks: []string{
				"Study DBMS fundamentals",
				"Practice SQL queries (basic to intermediate)",
				"Review OS concepts (processes, threads, memory)",
				"Solve 3 medium difficulty problems",
			},
		},
		{
			Day:   3,
			Focus: "DSA + Coding Practice",
			Tasks: []string{
				"Focus on Trees and Graphs",
				"Practice recursion and backtracking",
				"Solve 5 medium difficulty problems",
				"Review sorting and searching algorithms",
			},
		},
		{
			Day:   4,
			Focus: "Advanced DSA",
			Tasks: []string{
				"Study Dynamic Programming patterns",
				"Practice greedy algorithms",
				"Solve 4 hard difficulty problems",
				"Review graph algorithms (BFS, DFS, Dijkstra)",
			},
		},
		{
			Day:   5,
			Focus: "Project + Resume Alignment",
			Tasks: []string{
				"Review and update resume",
				"Prepare project explanations",
				"Practice explaining architecture decisions",
				"Align projects with JD requirements",
			},
		},
		{
			Day:   6,
			Focus: "Mock Interview Questions",
			Tasks: []string{
				"Practice technical interview questions",
				"Conduct mock coding interview",
				"Review system design basics",
				"Prepare behavioral question answers",
			},
		},
		{
			Day:   7,
			Focus: "Revision + Weak Areas",
			Tasks: []string{
				"Review all weak areas identified during the week",
				"Practice company-specific questions",
				"Final revision of core concepts",
				"Relax and prepare mentally for interview",
			},
		},
	}
}

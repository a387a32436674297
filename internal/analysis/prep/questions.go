package prep

// questionCount is the fixed number of interview questions produced.
const questionCount = 10

// defaultQuestions pads the rule-driven list when few skills matched.
var defaultQuestions = []string{
	"What is your approach to debugging a complex issue?",
	"How do you handle tight deadlines and pressure?",
	"Tell me about a time you had to learn a new technology quickly.",
	"What are your strengths and areas for improvement?",
	"Why do you want to work at our company?",
	"Where do you see yourself in 5 years?",
	"Describe a situation where you had a conflict with a team member.",
	"What motivates you in your work?",
}

// Questions builds exactly 10 likely interview questions from the
// detected skills, padding from the default pool when the rules yield
// fewer and truncating when they yield more.
func Questions(skills Skills) []string {
	questions := make([]string, 0, questionCount)

	if skills.has("coreCS", "DSA") {
		questions = append(questions,
			"How would you optimize search in a sorted array? Compare linear vs binary search.",
			"Explain the difference between Array and Linked List. When would you use each?",
		)
	}
	if skills.has("coreCS", "OOP") {
		questions = append(questions,
			"Explain the four pillars of OOP with real-world examples.",
			"What is the difference between abstraction and encapsulation?",
		)
	}
	if skills.has("data", "SQL") {
		questions = append(questions,
			"Explain indexing in databases. When does it help and when can it hurt performance?",
			"What is the difference between INNER JOIN and LEFT JOIN?",
			"Explain database normalization. What are the normal forms?",
		)
	}
	if skills.has("data", "MongoDB") {
		questions = append(questions,
			"Compare SQL vs NoSQL databases. When would you choose MongoDB over PostgreSQL?",
		)
	}
	if skills.has("web", "React") {
		questions = append(questions,
			"Explain state management options in React. Compare useState, useReducer, Context API, and Redux.",
			"What are React hooks? Explain useEffect and its dependency array.",
			"How does React Virtual DOM work? Why is it beneficial?",
		)
	}
	if skills.has("web", "Node.js") {
		questions = append(questions,
			"Explain the Node.js event loop. How does it handle asynchronous operations?",
			"What is the difference between CommonJS and ES modules in Node.js?",
		)
	}
	if skills.hasAny("web") {
		questions = append(questions,
			"Explain REST API principles. What makes an API RESTful?",
			"What is CORS and how do you handle it in web applications?",
		)
	}
	if skills.hasAny("cloud") {
		questions = append(questions,
			"Explain the difference between Docker and Kubernetes. When would you use each?",
			"What is CI/CD? Describe a typical pipeline you would set up.",
		)
	}
	if skills.has("cloud", "AWS") {
		questions = append(questions,
			"Name some AWS services you have used. Explain EC2, S3, and Lambda.",
		)
	}
	if skills.hasAny("testing") {
		questions = append(questions,
			"What is the difference between unit testing and integration testing?",
			"Explain TDD (Test Driven Development). What are its benefits?",
		)
	}
	if skills.has("languages", "Java") {
		questions = append(questions,
			"Explain Java Collections Framework. Compare ArrayList vs LinkedList, HashMap vs TreeMap.",
			"What is the difference between == and .equals() in Java?",
		)
	}
	if skills.has("languages", "Python") {
		questions = append(questions,
			"Explain Python decorators. Can you write a simple decorator example?",
			"What are Python generators? How do they differ from regular functions?",
		)
	}
	if skills.has("languages", "JavaScript") || skills.has("languages", "TypeScript") {
		questions = append(questions,
			"Explain closures in JavaScript. Provide a practical example.",
			"What is the difference between var, let, and const?",
			"Explain promises and async/await in JavaScript.",
		)
	}
	if skills.hasAny("cloud", "data") && len(questions) < 8 {
		questions = append(questions,
			"How would you design a URL shortener service?",
			"Design a rate limiter for an API. What approaches would you consider?",
		)
	}

	questions = append(questions,
		"Tell me about a challenging bug you faced and how you solved it.",
		"Describe a project you are most proud of. What was your role?",
		"How do you keep up with new technologies and continue learning?",
	)

	return PadQuestions(questions)
}

// PadQuestions pads from the default pool or truncates so the result
// holds exactly 10 questions. Padding aligns the pool's tail with the
// last slots, so slot 10 always draws the final pool entry.
func PadQuestions(questions []string) []string {
	out := append([]string(nil), questions...)
	for len(out) < questionCount {
		idx := len(out) - questionCount + len(defaultQuestions)
		if idx >= 0 && idx < len(defaultQuestions) {
			out = append(out, defaultQuestions[idx])
		} else {
			out = append(out, "Tell me about yourself.")
		}
	}
	return out[:questionCount]
}

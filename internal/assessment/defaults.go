package assessment

import "github.com/velionx/placement-engine/internal/types"

// DefaultBank returns the built-in question bank covering technical,
// aptitude, and soft-skill categories at three difficulties.
func DefaultBank() *Bank {
	return NewBank(defaultQuestions())
}

func defaultQuestions() []types.Question {
	return []types.Question{
		// Technical: DSA
		{
			ID:          "dsa_e1",
			Text:        "What is the time complexity of accessing an element in an array by index?",
			Options:     []string{"O(1)", "O(n)", "O(log n)", "O(n²)"},
			Correct:     "O(1)",
			Explanation: "Array access by index is constant time O(1) as it's a direct memory lookup.",
			Skill:       "dsa",
			Category:    "technical",
			Difficulty:  types.DifficultyEasy,
		},
		{
			ID:          "dsa_e2",
			Text:        "Which data structure follows LIFO (Last In First Out) principle?",
			Options:     []string{"Queue", "Stack", "Linked List", "Array"},
			Correct:     "Stack",
			Explanation: "Stack follows LIFO - the last element added is the first to be removed.",
			Skill:       "dsa",
			Category:    "technical",
			Difficulty:  types.DifficultyEasy,
		},
		{
			ID:          "dsa_e3",
			Text:        "What is the time complexity of linear search?",
			Options:     []string{"O(1)", "O(log n)", "O(n)", "O(n²)"},
			Correct:     "O(n)",
			Explanation: "Linear search checks each element one by one, so it's O(n).",
			Skill:       "dsa",
			Category:    "technical",
			Difficulty:  types.DifficultyEasy,
		},
		{
			ID:          "dsa_m1",
			Text:        "What is the time complexity of binary search?",
			Options:     []string{"O(1)", "O(log n)", "O(n)", "O(n log n)"},
			Correct:     "O(log n)",
			Explanation: "Binary search divides the search space in half each time, giving O(log n).",
			Skill:       "dsa",
			Category:    "technical",
			Difficulty:  types.DifficultyMedium,
		},
		{
			ID:          "dsa_m2",
			Text:        "Which sorting algorithm has the best average case time complexity?",
			Options:     []string{"Bubble Sort - O(n²)", "Quick Sort - O(n log n)", "Selection Sort - O(n²)", "Insertion Sort - O(n²)"},
			Correct:     "Quick Sort - O(n log n)",
			Explanation: "Quick Sort has an average case of O(n log n), making it one of the fastest general-purpose sorting algorithms.",
			Skill:       "dsa",
			Category:    "technical",
			Difficulty:  types.DifficultyMedium,
		},
		{
			ID:          "dsa_m3",
			Text:        "What data structure is used for BFS traversal of a graph?",
			Options:     []string{"Stack", "Queue", "Heap", "Tree"},
			Correct:     "Queue",
			Explanation: "BFS uses a queue to visit nodes level by level in FIFO order.",
			Skill:       "dsa",
			Category:    "technical",
			Difficulty:  types.DifficultyMedium,
		},
		{
			ID:          "dsa_h1",
			Text:        "What is the time complexity of Dijkstra's algorithm using a binary heap?",
			Options:     []string{"O(V²)", "O(E log V)", "O(V log V)", "O(E + V)"},
			Correct:     "O(E log V)",
			Explanation: "With a binary heap, Dijkstra's algorithm runs in O(E log V) where E is edges and V is vertices.",
			Skill:       "dsa",
			Category:    "technical",
			Difficulty:  types.DifficultyHard,
		},
		{
			ID:          "dsa_h2",
			Text:        "Which algorithm is used to find strongly connected components in a directed graph?",
			Options:     []string{"Dijkstra's", "Kosaraju's", "Prim's", "Kruskal's"},
			Correct:     "Kosaraju's",
			Explanation: "Kosaraju's algorithm finds all SCCs in a directed graph using two DFS passes.",
			Skill:       "dsa",
			Category:    "technical",
			Difficulty:  types.DifficultyHard,
		},

		// Technical: Python
		{
			ID:          "py_e1",
			Text:        "What is the output of: print(type([]))?",
			Options:     []string{"<class 'list'>", "<class 'array'>", "<class 'tuple'>", "<class 'dict'>"},
			Correct:     "<class 'list'>",
			Explanation: "[] creates an empty list in Python, so type([]) returns <class 'list'>.",
			Skill:       "python",
			Category:    "technical",
			Difficulty:  types.DifficultyEasy,
		},
		{
			ID:          "py_e2",
			Text:        "Which keyword is used to define a function in Python?",
			Options:     []string{"function", "def", "func", "define"},
			Correct:     "def",
			Explanation: "Python uses 'def' keyword to define functions.",
			Skill:       "python",
			Category:    "technical",
			Difficulty:  types.DifficultyEasy,
		},
		{
			ID:          "py_m1",
			Text:        "What is the difference between '==' and 'is' in Python?",
			Options:     []string{"'==' compares values, 'is' compares identity", "'==' compares identity, 'is' compares values", "They are the same", "'is' is not a valid operator"},
			Correct:     "'==' compares values, 'is' compares identity",
			Explanation: "'==' checks if values are equal, while 'is' checks if they are the same object in memory.",
			Skill:       "python",
			Category:    "technical",
			Difficulty:  types.DifficultyMedium,
		},
		{
			ID:          "py_m2",
			Text:        "What is a Python decorator?",
			Options:     []string{"A function that modifies another function", "A class attribute", "A type of loop", "A string formatter"},
			Correct:     "A function that modifies another function",
			Explanation: "Decorators are functions that take another function and extend its behavior.",
			Skill:       "python",
			Category:    "technical",
			Difficulty:  types.DifficultyMedium,
		},
		{
			ID:          "py_h1",
			Text:        "What is the output of: list(map(lambda x: x**2, filter(lambda x: x%2==0, range(10))))?",
			Options:     []string{"[0, 4, 16, 36, 64]", "[1, 9, 25, 49, 81]", "[0, 2, 4, 6, 8]", "[4, 16, 36, 64]"},
			Correct:     "[0, 4, 16, 36, 64]",
			Explanation: "First filters even numbers (0,2,4,6,8), then squares them to get [0,4,16,36,64].",
			Skill:       "python",
			Category:    "technical",
			Difficulty:  types.DifficultyHard,
		},

		// Technical: Java
		{
			ID:          "java_e1",
			Text:        "What is the entry point of a Java program?",
			Options:     []string{"main()", "start()", "run()", "init()"},
			Correct:     "main()",
			Explanation: "Java programs start execution from the main() method.",
			Skill:       "java",
			Category:    "technical",
			Difficulty:  types.DifficultyEasy,
		},
		{
			ID:          "java_m1",
			Text:        "What is the difference between ArrayList and LinkedList in Java?",
			Options:     []string{"ArrayList uses array, LinkedList uses doubly-linked list", "They are the same", "ArrayList is slower for all operations", "LinkedList cannot store objects"},
			Correct:     "ArrayList uses array, LinkedList uses doubly-linked list",
			Explanation: "ArrayList is better for random access, LinkedList is better for insertions/deletions.",
			Skill:       "java",
			Category:    "technical",
			Difficulty:  types.DifficultyMedium,
		},
		{
			ID:          "java_h1",
			Text:        "What is the purpose of the volatile keyword in Java?",
			Options:     []string{"Ensures visibility of changes across threads", "Makes variable immutable", "Increases performance", "Declares constants"},
			Correct:     "Ensures visibility of changes across threads",
			Explanation: "volatile ensures that reads/writes go directly to main memory, making changes visible to all threads.",
			Skill:       "java",
			Category:    "technical",
			Difficulty:  types.DifficultyHard,
		},

		// Technical: System Design
		{
			ID:          "sd_m1",
			Text:        "What is the CAP theorem in distributed systems?",
			Options:     []string{"Consistency, Availability, Partition tolerance - pick 2", "Cache, API, Performance", "Create, Alter, Process", "Compute, Analyze, Predict"},
			Correct:     "Consistency, Availability, Partition tolerance - pick 2",
			Explanation: "CAP theorem states that a distributed system can only guarantee 2 of these 3 properties.",
			Skill:       "system design",
			Category:    "technical",
			Difficulty:  types.DifficultyMedium,
		},
		{
			ID:          "sd_h1",
			Text:        "How would you design a rate limiter for an API?",
			Options:     []string{"Token bucket or sliding window algorithm", "Simple counter", "Random delay", "Queue all requests"},
			Correct:     "Token bucket or sliding window algorithm",
			Explanation: "Token bucket and sliding window are industry-standard algorithms for rate limiting.",
			Skill:       "system design",
			Category:    "technical",
			Difficulty:  types.DifficultyHard,
		},

		// Aptitude: logical
		{
			ID:          "apt_l_e1",
			Text:        "If A > B and B > C, then which is true?",
			Options:     []string{"A > C", "C > A", "A = C", "Cannot determine"},
			Correct:     "A > C",
			Explanation: "By transitivity, if A > B and B > C, then A > C.",
			Skill:       "logical",
			Category:    "aptitude",
			Difficulty:  types.DifficultyEasy,
		},
		{
			ID:          "apt_l_e2",
			Text:        "What comes next in the series: 2, 6, 18, 54, ?",
			Options:     []string{"108", "162", "72", "216"},
			Correct:     "162",
			Explanation: "Each number is multiplied by 3. 54 × 3 = 162.",
			Skill:       "logical",
			Category:    "aptitude",
			Difficulty:  types.DifficultyEasy,
		},
		{
			ID:          "apt_l_m1",
			Text:        "If FRIEND is coded as HUMJTK, how is CANDLE coded?",
			Options:     []string{"EDRIRL", "DCPFQG", "ESJFQG", "DCRILF"},
			Correct:     "EDRIRL",
			Explanation: "Each letter is shifted by +2 in the alphabet.",
			Skill:       "logical",
			Category:    "aptitude",
			Difficulty:  types.DifficultyMedium,
		},

		// Aptitude: quantitative
		{
			ID:          "apt_q_e1",
			Text:        "What is 15% of 200?",
			Options:     []string{"30", "25", "35", "40"},
			Correct:     "30",
			Explanation: "15% of 200 = (15/100) × 200 = 30.",
			Skill:       "quantitative",
			Category:    "aptitude",
			Difficulty:  types.DifficultyEasy,
		},
		{
			ID:          "apt_q_m1",
			Text:        "A train travels 300 km in 5 hours. What is its speed in m/s?",
			Options:     []string{"16.67 m/s", "60 m/s", "300 m/s", "50 m/s"},
			Correct:     "16.67 m/s",
			Explanation: "Speed = 300/5 = 60 km/h = 60 × (5/18) = 16.67 m/s.",
			Skill:       "quantitative",
			Category:    "aptitude",
			Difficulty:  types.DifficultyMedium,
		},

		// Soft skills: communication
		{
			ID:          "ss_c_e1",
			Text:        "What is active listening?",
			Options:     []string{"Fully concentrating on the speaker", "Talking while others speak", "Ignoring non-verbal cues", "Preparing your response while listening"},
			Correct:     "Fully concentrating on the speaker",
			Explanation: "Active listening means giving full attention to the speaker and understanding their message.",
			Skill:       "communication",
			Category:    "soft_skills",
			Difficulty:  types.DifficultyEasy,
		},
		{
			ID:          "ss_c_m1",
			Text:        "How should you handle a disagreement in a team meeting?",
			Options:     []string{"Listen first, then express your view respectfully", "Raise your voice to be heard", "Walk out of the meeting", "Ignore the disagreement"},
			Correct:     "Listen first, then express your view respectfully",
			Explanation: "Professional disagreements should be handled with respect and active listening.",
			Skill:       "communication",
			Category:    "soft_skills",
			Difficulty:  types.DifficultyMedium,
		},
	}
}

// Package questions holds the seed question set. The mapping is built once
// and never mutated after startup.
package questions

import "github.com/rohithredddy/plagiarism-Check-Demo/internal/models"

type entry struct {
	question string
	samples  []string
}

var order = []string{"python", "database", "networking"}

var seed = map[string]entry{
	"python": {
		question: "Explain the concept of inheritance in Python with an example.",
		samples: []string{
			"Inheritance is a mechanism that allows a class to inherit attributes and methods from another class. " +
				"For example, class Dog(Animal) inherits from Animal class, getting its properties like 'speak' and 'eat'.",
			"Python inheritance is when one class takes on the attributes and methods of another class. " +
				"The class that inherits is called child class, while the class being inherited from is the parent class.",
		},
	},
	"database": {
		question: "What is normalization in database design?",
		samples: []string{
			"Database normalization is the process of organizing data to minimize redundancy. " +
				"It involves dividing large tables into smaller ones and defining relationships between them.",
			"Normalization is a technique used in database design to reduce data redundancy and ensure data integrity. " +
				"It follows normal forms like 1NF, 2NF, and 3NF to structure the database efficiently.",
		},
	},
	"networking": {
		question: "Explain TCP/IP protocol.",
		samples: []string{
			"TCP/IP is a suite of communication protocols used to interconnect network devices on the internet. " +
				"TCP ensures reliable data delivery while IP handles addressing and routing.",
			"The TCP/IP protocol is the fundamental communication protocol of the internet. " +
				"It uses a layered approach and includes protocols like TCP for data transfer and IP for routing.",
		},
	},
}

// Samples returns the seed reference answers for a question type. Unknown
// types get nil, which the caller treats as an empty reference set.
func Samples(questionType string) []string {
	e, ok := seed[questionType]
	if !ok {
		return nil
	}
	return append([]string(nil), e.samples...)
}

// All lists every seed question in a stable order.
func All() []models.Question {
	out := make([]models.Question, 0, len(order))
	for _, t := range order {
		out = append(out, models.Question{Type: t, Question: seed[t].question})
	}
	return out
}

package domain

import "fmt"

// Person is an immutable name/age pair. Age is not validated.
type Person struct {
	name string
	age  int
}

func NewPerson(name string, age int) Person {
	return Person{name: name, age: age}
}

func (p Person) Name() string { return p.name }
func (p Person) Age() int     { return p.age }

// Details formats the person as "<name> is <age> years old.".
func (p Person) Details() string {
	return fmt.Sprintf("%s is %d years old.", p.name, p.age)
}

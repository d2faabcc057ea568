package domain

const (
	GenericSound = "Some generic sound"
	DogSound     = "Woof!"
	DogSpecies   = "Dog"
)

// SoundMaker is anything that can make a sound.
type SoundMaker interface {
	Species() string
	MakeSound() string
}

// Animal is the base sound maker with a generic sound.
type Animal struct {
	species string
}

func NewAnimal(species string) Animal {
	return Animal{species: species}
}

func (a Animal) Species() string { return a.species }

func (a Animal) MakeSound() string { return GenericSound }

// Dog is an Animal of species "Dog" that barks.
type Dog struct {
	Animal
	name string
}

func NewDog(name string) Dog {
	return Dog{Animal: NewAnimal(DogSpecies), name: name}
}

func (d Dog) Name() string { return d.name }

// MakeSound shadows Animal.MakeSound.
func (d Dog) MakeSound() string { return DogSound }

var (
	_ SoundMaker = Animal{}
	_ SoundMaker = Dog{}
)

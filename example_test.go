package inikit_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aretw0/inikit"
)

// Example_basic opens a file, edits one value and shows that the rest of the
// file is left alone.
func Example_basic() {
	dir, err := os.MkdirTemp("", "inikit-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "Quiz.ini")
	content := "; settings\n[CONFIG]\nMaxDificult=2\n\n[Q1]\nDificult=1\nQuestion=2+2?\nAnswer=1\n1=4\n2=5\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		log.Fatal(err)
	}

	reg := inikit.NewRegistry()
	f, err := reg.Open(path, false)
	if err != nil {
		log.Fatal(err)
	}

	answer, _ := f.Deref("Q1", "Answer")
	fmt.Println("answer:", answer)

	if err := f.Write("Q1", "Dificult", "2", true); err != nil {
		log.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	fmt.Print(string(data))
	// Output:
	// answer: 4
	// ; settings
	// [CONFIG]
	// MaxDificult=2
	//
	// [Q1]
	// Dificult=2
	// Question=2+2?
	// Answer=1
	// 1=4
	// 2=5
}

// ExamplePackSubItems stores several pairs in a single item.
func ExamplePackSubItems() {
	v := inikit.NewValues()
	v.Set("Name", "Ana")
	v.Set("Score", "10")

	packed := inikit.PackSubItems(v, inikit.DefaultEnclosers)
	fmt.Println(packed)

	back := inikit.UnpackSubItems(packed, inikit.DefaultEnclosers)
	score, _ := back.Get("Score")
	fmt.Println(score)
	// Output:
	// {Name=Ana}{Score=10}
	// 10
}

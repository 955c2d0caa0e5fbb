package handlers

import (
	"fmt"
)

// Validate checks a component schematic file and prints a short summary.
func Validate(filePath string) error {
	component, name, err := loadComponent(filePath)
	if err != nil {
		return err
	}

	if err := component.Validate(); err != nil {
		return fmt.Errorf("component validation failed: %w", err)
	}

	fmt.Printf("%s is a valid component schematic\n", filePath)
	fmt.Println()
	if name != "" {
		fmt.Printf("  Name:       %s\n", name)
	}
	fmt.Printf("  Workload:   %s\n", component.WorkloadType)
	fmt.Printf("  Containers: %d\n", len(component.Containers))
	fmt.Printf("  Parameters: %d\n", len(component.Parameters))

	return nil
}

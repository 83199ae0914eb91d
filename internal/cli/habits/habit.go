package habits

import (
	"fmt"

	"wellspring/internal/cli"
	"wellspring/internal/tracker"
	"wellspring/internal/validation"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits with today's progress."`
	Bump   HabitBumpCmd   `cmd:"" help:"Increment a habit's progress for today."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit a habit's name or target."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
}

type HabitAddCmd struct {
	Name   string `arg:"" help:"Habit name."`
	Target string `arg:"" help:"Daily target count."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	target, err := validation.TargetCount(c.Target)
	if err != nil {
		return err
	}

	svc := tracker.New(ctx.Store)
	habit, err := svc.Add(c.Name, target)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (target %d/day)\n", habit.Name, habit.TargetCount)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	svc := tracker.New(ctx.Store)
	habits, err := svc.Habits()
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with 'wellspring habit add'.")
		return nil
	}

	for _, h := range habits {
		marker := " "
		if h.IsCompleted() {
			marker = "✓"
		}
		fmt.Printf("%s %-24s %d/%d (%d%%)  %s\n", marker, h.Name, h.CurrentCount, h.TargetCount, h.CompletionPercentage(), h.ID)
	}
	return nil
}

type HabitBumpCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (c *HabitBumpCmd) Run(ctx *cli.Context) error {
	svc := tracker.New(ctx.Store)
	habit, completed, err := svc.Increment(c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d/%d\n", habit.Name, habit.CurrentCount, habit.TargetCount)
	if completed {
		fmt.Println("Habit completed! 🎉")
	}
	return nil
}

type HabitEditCmd struct {
	ID     string `arg:"" help:"Habit id."`
	Name   string `help:"New name." default:""`
	Target string `help:"New daily target count." default:""`
}

func (c *HabitEditCmd) Run(ctx *cli.Context) error {
	svc := tracker.New(ctx.Store)
	habit, err := svc.Get(c.ID)
	if err != nil {
		return err
	}

	name := habit.Name
	if c.Name != "" {
		name = c.Name
	}
	target := habit.TargetCount
	if c.Target != "" {
		target, err = validation.TargetCount(c.Target)
		if err != nil {
			return err
		}
	}

	updated, err := svc.Edit(c.ID, name, target)
	if err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s (target %d/day)\n", updated.Name, updated.TargetCount)
	return nil
}

type HabitDeleteCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	svc := tracker.New(ctx.Store)
	if err := svc.Delete(c.ID); err != nil {
		return err
	}
	fmt.Println("Habit deleted.")
	return nil
}

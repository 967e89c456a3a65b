// Package tasks provides runners for the task list: adding, completing,
// listing, and rolling daily tasks forward.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stintapp/stint/pkg/app"
	"github.com/stintapp/stint/pkg/printers"
)

type Add struct {
	Subject string
	Title   string
	Daily   bool
	DueDate string

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add task, no service")
	}
	task, err := n.Service.AddTask(n.Subject, n.Title, n.Daily, n.DueDate, time.Now())
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Task added")
	fmt.Printf("  %s (%s)\n", task.Title, task.ID)
	return nil
}

type Done struct {
	TaskID string

	Service *app.Service
}

func (n *Done) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete task, no service")
	}
	if err := n.Service.CompleteTask(n.TaskID, time.Now()); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Task done")
	return nil
}

type List struct {
	ShowID bool
	All    bool

	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list tasks, no service")
	}
	d, err := n.Service.Data()
	if err != nil {
		return err
	}

	tasks := d.Tasks
	if !n.All {
		open := tasks[:0:0]
		for _, t := range tasks {
			if !t.Done {
				open = append(open, t)
			}
		}
		tasks = open
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Tasks")
	pp.Tasks(tasks, func(id string) string {
		if subj, ok := d.Subject(id); ok {
			return subj.Name
		}
		return id
	})
	return nil
}

type Rollover struct {
	Service *app.Service
}

func (n *Rollover) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not roll tasks over, no service")
	}
	moved, err := n.Service.RolloverTasks(time.Now())
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title(fmt.Sprintf("Rolled %d task(s) forward", moved))
	return nil
}

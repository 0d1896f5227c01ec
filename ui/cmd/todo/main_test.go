package main

import (
	"testing"

	"github.com/PoignardAzur/panoramix-sub000/ui/uitest"
)

func addItem(h *uitest.Harness[todoApp], text string) {
	h.Type(2, text)
	h.Click(3)
}

func TestTodo(t *testing.T) {
	h := uitest.New(t, view)
	h.AssertText(4, "0 items, 0 done")

	addItem(h, "milk")
	addItem(h, "eggs")
	addItem(h, "bread")
	h.AssertText(2, "")
	h.AssertText(4, "3 items, 0 done")

	h.Toggle(uint32(itemID(2, 0)), true)
	h.AssertText(4, "3 items, 1 done")
	h.Click(5)
	h.AssertText(4, "2 items, 0 done")
	h.AssertAbsent(uint32(itemID(2, 0)))
}

func TestTodoConfirmFollowsItem(t *testing.T) {
	h := uitest.New(t, view)
	addItem(h, "milk")
	addItem(h, "eggs")
	addItem(h, "bread")

	// Arm the delete button of bread, then remove milk.
	h.Click(uint32(itemID(3, 1)))
	h.AssertText(uint32(itemID(3, 1)), "Sure?")
	h.Click(uint32(itemID(1, 1)))
	h.Click(uint32(itemID(1, 1)))
	h.AssertAbsent(uint32(itemID(1, 0)))

	h.AssertText(uint32(itemID(2, 1)), "Del")
	h.AssertText(uint32(itemID(3, 1)), "Sure?")
	h.Click(uint32(itemID(3, 1)))
	h.AssertAbsent(uint32(itemID(3, 0)))
	h.AssertText(4, "1 items, 0 done")
}

func TestTodoEmptyAddIgnored(t *testing.T) {
	h := uitest.New(t, view)
	h.Click(3)
	h.AssertText(4, "0 items, 0 done")
}

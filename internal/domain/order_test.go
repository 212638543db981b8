package domain

import "testing"

func TestOrderFromPairs_LastDuplicateWins(t *testing.T) {
	o := OrderFromPairs([]string{"Pizza", "Samosa", "Pizza"}, []int{1, 2, 4})

	if got := o.Summary(); got != "4 Pizza, 2 Samosa" {
		t.Fatalf("summary=%q", got)
	}
	if o.Len() != 2 {
		t.Fatalf("len=%d", o.Len())
	}
}

func TestMerge_OverwritesAndAppends(t *testing.T) {
	o := OrderFromPairs([]string{"Pizza", "Mango Lassi"}, []int{2, 1})
	o.Merge(OrderFromPairs([]string{"Samosa", "Pizza"}, []int{3, 5}))

	if got := o.Summary(); got != "5 Pizza, 1 Mango Lassi, 3 Samosa" {
		t.Fatalf("summary=%q", got)
	}

	o.Merge(nil)
	if o.Len() != 3 {
		t.Fatalf("merge(nil) changed order: %q", o.Summary())
	}
}

func TestRemove(t *testing.T) {
	o := OrderFromPairs([]string{"Pizza", "Samosa", "Vada Pav"}, []int{1, 2, 3})

	if !o.Remove("Samosa") {
		t.Fatal("Samosa must be removed")
	}
	if o.Remove("Samosa") {
		t.Fatal("second remove must report false")
	}
	if _, ok := o.Quantity("Samosa"); ok {
		t.Fatal("Samosa still present")
	}
	if got := o.Summary(); got != "1 Pizza, 3 Vada Pav" {
		t.Fatalf("summary=%q", got)
	}

	// повторное добавление — в конец
	o.Set("Samosa", 1)
	if got := o.Summary(); got != "1 Pizza, 3 Vada Pav, 1 Samosa" {
		t.Fatalf("summary=%q", got)
	}
}

func TestEmptyOrder(t *testing.T) {
	o := NewOrder()
	if !o.IsEmpty() || o.Summary() != "" || len(o.Lines()) != 0 {
		t.Fatalf("new order must be empty: %q", o.Summary())
	}

	// нулевое значение тоже пригодно для Set
	var zero Order
	zero.Set("Pizza", 1)
	if q, ok := zero.Quantity("Pizza"); !ok || q != 1 {
		t.Fatalf("quantity=%d ok=%v", q, ok)
	}
}

func TestClone_IsIndependent(t *testing.T) {
	o := OrderFromPairs([]string{"Pizza"}, []int{1})
	c := o.Clone()

	c.Set("Pizza", 9)
	c.Set("Samosa", 1)

	if got := o.Summary(); got != "1 Pizza" {
		t.Fatalf("original changed: %q", got)
	}
	if got := c.Summary(); got != "9 Pizza, 1 Samosa" {
		t.Fatalf("clone=%q", got)
	}

	var nilOrder *Order
	if nilOrder.Clone() != nil {
		t.Fatal("clone of nil must be nil")
	}
}

func TestLines_KeepInsertionOrder(t *testing.T) {
	o := OrderFromPairs([]string{"Rava Dosa", "Pav Bhaji"}, []int{1, 2})
	o.Set("Rava Dosa", 3)

	lines := o.Lines()
	want := []OrderLine{{FoodItem: "Rava Dosa", Quantity: 3}, {FoodItem: "Pav Bhaji", Quantity: 2}}
	if len(lines) != len(want) {
		t.Fatalf("lines=%v", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %+v want %+v", i, lines[i], want[i])
		}
	}
}

// "pizza" и " Pizza" — одна позиция, как и в меню БД: иначе при оформлении
// две строки заказа упрутся в один item_id.
func TestItemNames_CaseAndSpaceInsensitive(t *testing.T) {
	o := OrderFromPairs([]string{"Pizza", "samosa"}, []int{1, 2})
	o.Merge(OrderFromPairs([]string{" pizza ", "SAMOSA"}, []int{3, 4}))

	if o.Len() != 2 {
		t.Fatalf("len=%d summary=%q", o.Len(), o.Summary())
	}
	if got := o.Summary(); got != "3 Pizza, 4 samosa" {
		t.Fatalf("summary=%q", got)
	}
	if q, ok := o.Quantity("PIZZA"); !ok || q != 3 {
		t.Fatalf("Quantity(PIZZA)=%d ok=%v", q, ok)
	}

	if !o.Remove("Samosa ") {
		t.Fatal("remove must match regardless of case")
	}
	lines := o.Lines()
	if len(lines) != 1 || lines[0].FoodItem != "Pizza" || lines[0].Quantity != 3 {
		t.Fatalf("lines=%+v", lines)
	}
}

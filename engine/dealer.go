package engine

import (
	"fmt"
)

// Deal builds the tableau from the top of the stock
// File i receives i+1 cards; only the last card of each file is face-up
func (t *Table) Deal() error {
	stock := t.piles[t.stock]
	need := len(t.files) * (len(t.files) + 1) / 2
	if stock.Count() < need {
		return fmt.Errorf("deal %d files needs %d cards, stock has %d: %w",
			len(t.files), need, stock.Count(), ErrNotEnoughCards)
	}

	for i, fid := range t.files {
		file := t.piles[fid]
		for j := 0; j <= i; j++ {
			id, err := stock.RemoveTop()
			if err != nil {
				return fmt.Errorf("deal file %d: %w", i, err)
			}
			file.Append(id)
			t.place(id, fid, t.slot(file, file.Count()-1))
			t.cards[id].FaceUp = j == i
		}
	}
	t.check("deal")
	return nil
}

// Draw moves the stock top to the waste top, face-up
// Callers guard on an empty stock; ErrEmptyPile is returned otherwise
func (t *Table) Draw() error {
	stock, waste := t.piles[t.stock], t.piles[t.waste]
	id, err := stock.RemoveTop()
	if err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	waste.Append(id)
	t.place(id, t.waste, waste.Anchor())
	t.cards[id].FaceUp = true
	t.check("draw")
	t.log.Debug("drew card", "card", id, "stock", stock.Count())
	return nil
}

// Recycle refills an empty stock with the waste, face-down
// Cards keep waste order, so the earliest drawn card becomes the stock bottom
func (t *Table) Recycle() error {
	stock, waste := t.piles[t.stock], t.piles[t.waste]
	if stock.Count() > 0 {
		return fmt.Errorf("recycle: %w", ErrStockNotEmpty)
	}
	if waste.Count() == 0 {
		return fmt.Errorf("recycle: %s: %w", waste, ErrEmptyPile)
	}

	for _, id := range waste.cards {
		stock.Append(id)
		t.place(id, t.stock, stock.Anchor())
		t.cards[id].FaceUp = false
	}
	waste.clear()
	t.check("recycle")
	t.log.Debug("recycled waste", "stock", stock.Count())
	return nil
}

// ClickStock performs the stock action: draw when cards remain, otherwise recycle
// Does nothing when both stock and waste are empty
func (t *Table) ClickStock() (drew, recycled bool) {
	switch {
	case t.piles[t.stock].Count() > 0:
		return t.Draw() == nil, false
	case t.piles[t.waste].Count() > 0:
		return false, t.Recycle() == nil
	}
	return false, false
}

package node

// HeadInsert добавление нового узла в начало цепочки с возвратом новой головы.
func HeadInsert[T any](head *Node[T], v T) *Node[T] {
	return New(v, head)
}

// InsertAfter добавление нового узла сразу после prev с возвратом созданного узла.
func InsertAfter[T any](prev *Node[T], v T) *Node[T] {
	n := New(v, prev.link)
	prev.link = n
	return n
}

// HeadRemove удаление первого узла цепочки с возвратом новой головы.
func HeadRemove[T any](head *Node[T]) *Node[T] {
	if head == nil {
		return nil
	}

	next := head.link
	head.cleanup() // для упрощения работы GC
	return next
}

// RemoveAfter удаление узла следующего за prev. Ничего не делает если prev последний.
func RemoveAfter[T any](prev *Node[T]) {
	n := prev.link
	if n == nil {
		return
	}

	prev.link = n.link
	n.cleanup()
}

// Clear освобождение всех узлов цепочки начинающейся с head.
func Clear[T any](head *Node[T]) {
	for head != nil {
		head = HeadRemove(head)
	}
}

// Length количество узлов достижимых из head.
func Length[T any](head *Node[T]) int {
	var res int
	for n := head; n != nil; n = n.link {
		res++
	}

	return res
}

// Copy полная копия цепочки. Возвращает голову и хвост копии, nil, nil для пустой.
func Copy[T any](src *Node[T]) (head, tail *Node[T]) {
	return Piece(src, nil)
}

// Piece копия отрезка цепочки [start, end). Для end == nil копируется всё
// до конца цепочки, для start == end результатом будет пустая цепочка.
// end должен быть достижим из start, либо быть nil.
func Piece[T any](start, end *Node[T]) (head, tail *Node[T]) {
	if start == nil || start == end {
		return nil, nil
	}

	head = New(start.value, nil)
	tail = head
	for n := start.link; n != end && n != nil; n = n.link {
		tail = InsertAfter(tail, n.value)
	}

	return head, tail
}

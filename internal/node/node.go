package node

// Node узел односвязного списка, содержащий одно значение и ссылку на следующий узел.
type Node[T any] struct {
	link  *Node[T]
	value T
}

// New конструктор узла с данным значением и следующим узлом.
func New[T any](v T, link *Node[T]) *Node[T] {
	return &Node[T]{
		link:  link,
		value: v,
	}
}

// Value возврат значения лежащего в узле.
func (n *Node[T]) Value() T {
	return n.value
}

// SetValue замена значения лежащего в узле.
func (n *Node[T]) SetValue(v T) {
	n.value = v
}

// Link следующий узел или nil для последнего узла цепочки.
func (n *Node[T]) Link() *Node[T] {
	return n.link
}

// SetLink установка следующего узла.
func (n *Node[T]) SetLink(link *Node[T]) {
	n.link = link
}

func (n *Node[T]) cleanup() {
	var zero T
	n.link = nil
	n.value = zero
}

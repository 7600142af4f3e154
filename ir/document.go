package ir

// Document builds an empty channel-set document root. The two top-level
// slots are fixed, always present, and always in this order.
func Document() *Node {
	root := Object()
	root.Set("channels", Array())
	root.Set("config", Object().Set("lora", Object()))
	return root
}

// Channels returns the channel sequence of a document root.
func (y *Node) Channels() *Node {
	return y.Get("channels")
}

// Lora returns the LoRa configuration map of a document root.
func (y *Node) Lora() *Node {
	cfg := y.Get("config")
	if cfg == nil {
		return nil
	}
	return cfg.Get("lora")
}

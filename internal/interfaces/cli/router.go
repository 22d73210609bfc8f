package cli

// routes tabla de comandos del shell.
func (s *Shell) routes() map[string]command {
	return map[string]command{
		// Catálogo
		"catalog":  {usage: "catalog", help: "lista todos los productos", run: s.listCatalog},
		"category": {usage: "category [categoría]", help: "lista categorías o productos de una categoría", run: s.listCategory},
		"search":   {usage: "search <texto>", help: "busca por nombre o categoría", run: s.search},
		"show":     {usage: "show <id>", help: "detalle de un producto", run: s.show},

		// Carrito
		"add":    {usage: "add <id> [cantidad]", help: "agrega un producto al carrito", run: s.add},
		"remove": {usage: "remove <id>", help: "quita la línea del carrito", run: s.remove},
		"qty":    {usage: "qty <id> <cantidad>", help: "fija la cantidad (0 la quita)", run: s.setQuantity},
		"cart":   {usage: "cart", help: "muestra el carrito", run: s.showCart},
		"clear":  {usage: "clear", help: "vacía el carrito", run: s.clearCart},

		// Favoritos
		"fav":  {usage: "fav <id>", help: "marca o desmarca un favorito", run: s.toggleFavorite},
		"favs": {usage: "favs", help: "lista los favoritos", run: s.listFavorites},

		// Sesión
		"login":    {usage: "login <teléfono|email> <clave>", help: "inicia sesión", run: s.login},
		"register": {usage: "register", help: "crea una cuenta", run: s.register},
		"logout":   {usage: "logout", help: "cierra la sesión", run: s.logout},
		"profile":  {usage: "profile", help: "muestra el perfil", run: s.profile},
		"update":   {usage: "update <campo> <valor>", help: "modifica name, phone, email o address", run: s.updateProfile},

		// Pedidos
		"checkout": {usage: "checkout [delivery|pickup] [mobile|card|cash] [notas]", help: "confirma el pedido", run: s.checkout},
		"orders":   {usage: "orders", help: "historial de pedidos", run: s.orders},
		"receipt":  {usage: "receipt <id>", help: "genera el recibo PDF de un pedido", run: s.receipt},

		"help": {usage: "help", help: "esta ayuda", run: s.help},
		"quit": {usage: "quit", help: "salir", run: s.exit},
	}
}

// Package listener opens the server socket of the remote call server and
// accepts its single client.
//
//	l, err := listener.Listen(ctx, listener.Config{Port: listener.DefaultPort})
//	if err != nil {
//	    return err // wraps listener.ErrBind
//	}
//	conn, err := l.Accept(ctx) // closes the listening socket
//	if err != nil {
//	    return err // wraps listener.ErrAccept
//	}
//	defer conn.Close()
package listener

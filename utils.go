package netreactor

import (
	"crypto/tls"
	"errors"
	"net"
	"os"
	"reflect"
	"unsafe"
)

type FileDesc interface {
	File() (f *os.File, err error)
}

// DescriptorFor extracts the descriptor key to suspend on from a net.Conn.
// File() duplicates the descriptor, so the returned fd stays valid for
// polling independently of the runtime netpoller's copy; the caller owns it
// and closes it with the connection.
func DescriptorFor(conn net.Conn) (int, error) {
	tcpConn, ok := conn.(*net.TCPConn)
	if ok {
		file, err := tcpConn.File()
		if err != nil {
			return 0, err
		}
		return int(file.Fd()), nil
	}
	tlsConn, ok := conn.(*tls.Conn)
	if ok {
		// XXX: This is really BAD!!! Only way currently to get the underlying
		// connection of the tls.Conn. At least until
		// https://github.com/golang/go/issues/29257 is solved.
		inner := reflect.ValueOf(tlsConn).Elem().FieldByName("conn")
		inner = reflect.NewAt(inner.Type(), unsafe.Pointer(inner.UnsafeAddr())).Elem()
		fileDesc, ok := inner.Interface().(FileDesc)
		if !ok {
			return 0, errors.New("underlying tls conn exposes no file descriptor")
		}
		file, err := fileDesc.File()
		if err != nil {
			return 0, err
		}
		return int(file.Fd()), nil
	}
	return 0, errors.New("can't extract descriptor from net.Conn")
}

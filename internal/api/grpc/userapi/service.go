package userapi

import (
	"context"

	"google.golang.org/grpc"

	"github.com/carlosebw/crudify/internal/api/grpc/codec"
)

const ServiceName = "crudify.v1.UserAdmin"

const (
	ListUsersFullMethodName          = "/" + ServiceName + "/ListUsers"
	CreateUserFullMethodName         = "/" + ServiceName + "/CreateUser"
	UpdateUserFullMethodName         = "/" + ServiceName + "/UpdateUser"
	DeleteUserFullMethodName         = "/" + ServiceName + "/DeleteUser"
	WatchNotificationsFullMethodName = "/" + ServiceName + "/WatchNotifications"
)

// UserAdminServer is the server API for the UserAdmin service.
type UserAdminServer interface {
	ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error)
	CreateUser(context.Context, *CreateUserRequest) (*MutationResponse, error)
	UpdateUser(context.Context, *UpdateUserRequest) (*MutationResponse, error)
	DeleteUser(context.Context, *DeleteUserRequest) (*MutationResponse, error)
	WatchNotifications(*WatchNotificationsRequest, grpc.ServerStreamingServer[Notification]) error
}

func RegisterUserAdminServer(s grpc.ServiceRegistrar, srv UserAdminServer) {
	s.RegisterService(&UserAdmin_ServiceDesc, srv)
}

func _UserAdmin_ListUsers_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListUsersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserAdminServer).ListUsers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ListUsersFullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserAdminServer).ListUsers(ctx, req.(*ListUsersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserAdmin_CreateUser_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserAdminServer).CreateUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CreateUserFullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserAdminServer).CreateUser(ctx, req.(*CreateUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserAdmin_UpdateUser_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserAdminServer).UpdateUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UpdateUserFullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserAdminServer).UpdateUser(ctx, req.(*UpdateUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserAdmin_DeleteUser_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserAdminServer).DeleteUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DeleteUserFullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserAdminServer).DeleteUser(ctx, req.(*DeleteUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserAdmin_WatchNotifications_Handler(srv any, stream grpc.ServerStream) error {
	m := new(WatchNotificationsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(UserAdminServer).WatchNotifications(m, &grpc.GenericServerStream[WatchNotificationsRequest, Notification]{ServerStream: stream})
}

// UserAdmin_ServiceDesc is the grpc.ServiceDesc for the UserAdmin service.
var UserAdmin_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*UserAdminServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListUsers",
			Handler:    _UserAdmin_ListUsers_Handler,
		},
		{
			MethodName: "CreateUser",
			Handler:    _UserAdmin_CreateUser_Handler,
		},
		{
			MethodName: "UpdateUser",
			Handler:    _UserAdmin_UpdateUser_Handler,
		},
		{
			MethodName: "DeleteUser",
			Handler:    _UserAdmin_DeleteUser_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchNotifications",
			Handler:       _UserAdmin_WatchNotifications_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "crudify/v1/user_admin",
}

// UserAdminClient calls the UserAdmin service using the JSON codec.
type UserAdminClient struct {
	cc grpc.ClientConnInterface
}

func NewUserAdminClient(cc grpc.ClientConnInterface) *UserAdminClient {
	return &UserAdminClient{cc: cc}
}

func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(codec.Name)}, opts...)
}

func (c *UserAdminClient) ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error) {
	out := new(ListUsersResponse)
	if err := c.cc.Invoke(ctx, ListUsersFullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *UserAdminClient) CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*MutationResponse, error) {
	out := new(MutationResponse)
	if err := c.cc.Invoke(ctx, CreateUserFullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *UserAdminClient) UpdateUser(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*MutationResponse, error) {
	out := new(MutationResponse)
	if err := c.cc.Invoke(ctx, UpdateUserFullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *UserAdminClient) DeleteUser(ctx context.Context, in *DeleteUserRequest, opts ...grpc.CallOption) (*MutationResponse, error) {
	out := new(MutationResponse)
	if err := c.cc.Invoke(ctx, DeleteUserFullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *UserAdminClient) WatchNotifications(ctx context.Context, in *WatchNotificationsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Notification], error) {
	stream, err := c.cc.NewStream(ctx, &UserAdmin_ServiceDesc.Streams[0], WatchNotificationsFullMethodName, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[WatchNotificationsRequest, Notification]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}
